//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// POSIX RawSocket: file-descriptor ownership shared by the per-OS creation
// paths in sock_cloexec.go and sys_cloexec.go.

package sys

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// Family, type and protocol codes for the facade layer.
const (
	AFInet  = unix.AF_INET
	AFInet6 = unix.AF_INET6
	AFUnix  = unix.AF_UNIX

	SockStream = unix.SOCK_STREAM

	ProtoTCP = unix.IPPROTO_TCP
)

// RawSocket is the sole owner of one file descriptor. The descriptor is
// closed exactly once: by Close, or by the finalizer if the value is
// dropped while still armed. Release disarms without any native call.
type RawSocket struct {
	fd int
}

// Open creates a non-blocking, close-on-exec socket. On failure partway
// through the flag sequence the half-built descriptor is closed before the
// error is returned.
func Open(family, sotype, proto int) (*RawSocket, error) {
	fd, err := open(family, sotype, proto)
	if err != nil {
		return nil, err
	}
	s := &RawSocket{fd: fd}
	runtime.SetFinalizer(s, (*RawSocket).finalize)
	return s, nil
}

// Connect issues connect(2) with the encoded address image. Would-block
// results (EINPROGRESS) are surfaced verbatim like any other errno.
func (s *RawSocket) Connect(sa []byte) error {
	if err := connectRaw(s.fd, sa); err != nil {
		return os.NewSyscallError("connect", err)
	}
	return nil
}

// Close releases the descriptor. Close errors are swallowed: the teardown
// path is best-effort and nothing actionable remains at that point. Calling
// Close again, or after Release, does nothing.
func (s *RawSocket) Close() error {
	if s.fd < 0 {
		return nil
	}
	runtime.SetFinalizer(s, nil)
	fd := s.fd
	s.fd = -1
	_ = unix.Close(fd)
	return nil
}

// Release transfers ownership of the descriptor to the caller and disarms
// teardown without issuing any native call.
func (s *RawSocket) Release() uintptr {
	runtime.SetFinalizer(s, nil)
	fd := s.fd
	s.fd = -1
	return uintptr(fd)
}

// Handle returns the descriptor without transferring ownership.
func (s *RawSocket) Handle() uintptr { return uintptr(s.fd) }

func (s *RawSocket) finalize() { _ = s.Close() }

// setNonblock moves fd into non-blocking mode by rewriting its status flags.
func setNonblock(fd int) error {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return os.NewSyscallError("fcntl", err)
	}
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags|unix.O_NONBLOCK); err != nil {
		return os.NewSyscallError("fcntl", err)
	}
	return nil
}
