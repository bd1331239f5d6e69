//go:build windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Socket I/O on Windows socket handles.

package rawsock

import "golang.org/x/sys/windows"

func readSocket(h uintptr, buf []byte) (int, error) {
	return windows.Read(windows.Handle(h), buf)
}

func writeSocket(h uintptr, buf []byte) (int, error) {
	return windows.Write(windows.Handle(h), buf)
}

func closeSocket(h uintptr) error {
	return windows.Closesocket(windows.Handle(h))
}
