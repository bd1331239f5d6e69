//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native sockaddr layout for Linux: a 16-bit family word at offset 0.

package sockaddr

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

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

func putHeader(b []byte, family, _ int) {
	binary.NativeEndian.PutUint16(b[:2], uint16(family))
}
