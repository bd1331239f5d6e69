//go:build dragonfly || freebsd || linux || netbsd || openbsd

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Socket creation where SOCK_CLOEXEC exists: the close-on-exec flag rides
// on the socket(2) call itself, leaving no window for a concurrent
// fork/exec to inherit the descriptor.

package sys

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

func open(family, sotype, proto int) (int, error) {
	fd, err := unix.Socket(family, sotype|unix.SOCK_CLOEXEC, proto)
	if err != nil {
		return -1, os.NewSyscallError("socket", err)
	}
	if err := setNonblock(fd); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

func connectRaw(fd int, sa []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_CONNECT, uintptr(fd), uintptr(unsafe.Pointer(&sa[0])), uintptr(len(sa)))
	if errno != 0 {
		return errno
	}
	return nil
}
