//go:build windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows RawSocket over Winsock: WSASocketW with the overlapped flag,
// handle made non-inheritable, FIONBIO for non-blocking mode. Winsock is
// initialized once process-wide before the first socket; concurrent first
// callers block on the same initialization and then proceed.

package sys

import (
	"os"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Family, type and protocol codes for the facade layer.
const (
	AFInet  = windows.AF_INET
	AFInet6 = windows.AF_INET6
	AFUnix  = windows.AF_UNIX

	SockStream = windows.SOCK_STREAM

	ProtoTCP = windows.IPPROTO_TCP
)

// FIONBIO command for WSAIoctl.
const fionbio = 0x8004667e

var (
	modws2_32   = windows.NewLazySystemDLL("ws2_32.dll")
	procConnect = modws2_32.NewProc("connect")
)

var (
	wsaOnce sync.Once
	wsaErr  error
)

// initWinsock runs WSAStartup exactly once. Every entry point that needs
// Winsock must call it; nothing may assume it already ran.
func initWinsock() error {
	wsaOnce.Do(func() {
		var data windows.WSAData
		wsaErr = windows.WSAStartup(uint32(0x202), &data)
	})
	if wsaErr != nil {
		return os.NewSyscallError("wsastartup", wsaErr)
	}
	return nil
}

// RawSocket is the sole owner of one Winsock handle. The handle is closed
// exactly once: by Close, or by the finalizer if the value is dropped while
// still armed. Release disarms without any native call.
type RawSocket struct {
	handle windows.Handle
}

// Open creates a non-blocking, non-inheritable socket. The overlapped flag
// is required for non-blocking operation on Winsock. On failure partway
// through the handle is closed before the error is returned.
func Open(family, sotype, proto int) (*RawSocket, error) {
	if err := initWinsock(); err != nil {
		return nil, err
	}
	h, err := windows.WSASocket(int32(family), int32(sotype), int32(proto), nil, 0, windows.WSA_FLAG_OVERLAPPED)
	if err != nil {
		return nil, os.NewSyscallError("wsasocketw", err)
	}
	if err := windows.SetHandleInformation(h, windows.HANDLE_FLAG_INHERIT, 0); err != nil {
		_ = windows.Closesocket(h)
		return nil, os.NewSyscallError("sethandleinformation", err)
	}
	if err := setNonblock(h); err != nil {
		_ = windows.Closesocket(h)
		return nil, err
	}
	s := &RawSocket{handle: h}
	runtime.SetFinalizer(s, (*RawSocket).finalize)
	return s, nil
}

// Connect issues the Winsock connect call with the encoded address image.
// WSAEWOULDBLOCK is surfaced verbatim like any other error code.
//
// x/sys/windows only exports the Sockaddr-interface connect, which would
// mean decoding the image back into typed form; the raw entry point is
// called directly instead.
func (s *RawSocket) Connect(sa []byte) error {
	r, _, callErr := procConnect.Call(uintptr(s.handle), uintptr(unsafe.Pointer(&sa[0])), uintptr(len(sa)))
	runtime.KeepAlive(sa)
	if r != 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno != 0 {
			return os.NewSyscallError("connect", errno)
		}
		return os.NewSyscallError("connect", syscall.EINVAL)
	}
	return nil
}

// Close releases the handle. Close errors are swallowed: the teardown path
// is best-effort and nothing actionable remains at that point. Calling
// Close again, or after Release, does nothing.
func (s *RawSocket) Close() error {
	if s.handle == windows.InvalidHandle {
		return nil
	}
	runtime.SetFinalizer(s, nil)
	h := s.handle
	s.handle = windows.InvalidHandle
	_ = windows.Closesocket(h)
	return nil
}

// Release transfers ownership of the handle to the caller and disarms
// teardown without issuing any native call.
func (s *RawSocket) Release() uintptr {
	runtime.SetFinalizer(s, nil)
	h := s.handle
	s.handle = windows.InvalidHandle
	return uintptr(h)
}

// Handle returns the handle without transferring ownership.
func (s *RawSocket) Handle() uintptr { return uintptr(s.handle) }

func (s *RawSocket) finalize() { _ = s.Close() }

func setNonblock(h windows.Handle) error {
	mode := uint32(1)
	var returned uint32
	err := windows.WSAIoctl(h, fionbio, (*byte)(unsafe.Pointer(&mode)), uint32(unsafe.Sizeof(mode)), nil, 0, &returned, nil, 0)
	if err != nil {
		return os.NewSyscallError("wsaioctl", err)
	}
	return nil
}
