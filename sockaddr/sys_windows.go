//go:build windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native sockaddr layout for Windows: a 16-bit family word at offset 0, as
// on Linux. AF_UNIX is available since Windows 10 with the same
// family+path shape.

package sockaddr

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	familyInet  = windows.AF_INET
	familyInet6 = windows.AF_INET6
	familyUnix  = windows.AF_UNIX

	sizeofInet4 = int(unsafe.Sizeof(windows.RawSockaddrInet4{}))
	sizeofInet6 = int(unsafe.Sizeof(windows.RawSockaddrInet6{}))

	unixPathOffset = 2
	unixPathMax    = windows.UNIX_PATH_MAX

	// SOCKADDR_STORAGE
	capacity = 128
)

func putHeader(b []byte, family, _ int) {
	binary.NativeEndian.PutUint16(b[:2], uint16(family))
}
