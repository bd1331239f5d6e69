//go:build darwin || dragonfly || freebsd || netbsd || openbsd

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native sockaddr layout for the BSDs and Darwin: a length byte at offset 0
// followed by a one-byte family.

package sockaddr

import "golang.org/x/sys/unix"

const (
	familyInet  = unix.AF_INET
	familyInet6 = unix.AF_INET6
	familyUnix  = unix.AF_UNIX

	sizeofInet4 = unix.SizeofSockaddrInet4
	sizeofInet6 = unix.SizeofSockaddrInet6

	unixPathOffset = 2
	unixPathMax    = unix.SizeofSockaddrUnix - unixPathOffset

	// sockaddr_storage
	capacity = 128
)

func putHeader(b []byte, family, size int) {
	b[0] = byte(size)
	b[1] = byte(family)
}
