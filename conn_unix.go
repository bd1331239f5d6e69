//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Socket I/O on file descriptors for Unix-like systems.

package rawsock

import "golang.org/x/sys/unix"

func readSocket(fd uintptr, buf []byte) (int, error) {
	return unix.Read(int(fd), buf)
}

func writeSocket(fd uintptr, buf []byte) (int, error) {
	return unix.Write(int(fd), buf)
}

func closeSocket(fd uintptr) error {
	return unix.Close(int(fd))
}
