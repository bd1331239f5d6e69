//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// End-to-end pipeline tests: create → encode → connect → convert against
// local listeners.

package rawsock_test

import (
	"errors"
	"io"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"

	"github.com/momentics/rawsock"
	"github.com/momentics/rawsock/sockaddr"
)

// awaitWritable drives a non-blocking connect to completion and returns the
// socket's pending error, the way a caller's readiness layer would.
func awaitWritable(t *testing.T, fd int) {
	t.Helper()
	pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLOUT}}
	deadline := time.Now().Add(5 * time.Second)
	for {
		n, err := unix.Poll(pfd, 1000)
		if err == unix.EINTR {
			continue
		}
		assert.NilError(t, err)
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("connect did not complete")
		}
	}
	soErr, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
	assert.NilError(t, err)
	assert.Equal(t, soErr, 0)
}

func TestConnectTCPPipeline(t *testing.T) {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	assert.NilError(t, err)
	defer l.Close()

	received := make(chan []byte, 1)
	go func() {
		c, err := l.Accept()
		if err != nil {
			received <- nil
			return
		}
		defer c.Close()
		b, _ := io.ReadAll(c)
		received <- b
	}()

	s, err := rawsock.New(rawsock.IPv4(), rawsock.Stream(), rawsock.TCP())
	assert.NilError(t, err)

	ep := l.Addr().(*net.TCPAddr).AddrPort()
	if err := s.Connect(ep); err != nil {
		assert.Assert(t, errors.Is(err, unix.EINPROGRESS), "unexpected connect error: %v", err)
	}
	awaitWritable(t, int(s.Handle()))

	conn := s.IntoConn()
	// The emptied descriptor facade no longer owns the handle.
	assert.NilError(t, s.Close())

	payload := []byte("rawsock end to end")
	n, err := conn.Write(payload)
	assert.NilError(t, err)
	assert.Equal(t, n, len(payload))
	assert.NilError(t, conn.Close())

	assert.DeepEqual(t, <-received, payload)
}

func TestConnectUnixPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.sock")
	l, err := net.Listen("unix", path)
	assert.NilError(t, err)
	defer l.Close()

	received := make(chan []byte, 1)
	go func() {
		c, err := l.Accept()
		if err != nil {
			received <- nil
			return
		}
		defer c.Close()
		b, _ := io.ReadAll(c)
		received <- b
	}()

	s, err := rawsock.New(rawsock.Unix(), rawsock.Stream(), rawsock.Protocol{})
	assert.NilError(t, err)
	defer s.Close()

	// A non-blocking AF_UNIX connect reports EAGAIN, not EINPROGRESS, when
	// it cannot complete immediately.
	if err := s.ConnectUnix(path); err != nil {
		assert.Assert(t, errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINPROGRESS),
			"unexpected connect error: %v", err)
	}
	awaitWritable(t, int(s.Handle()))

	conn := s.IntoConn()
	payload := []byte("over the unix socket")
	_, err = conn.Write(payload)
	assert.NilError(t, err)
	assert.NilError(t, conn.Close())

	assert.DeepEqual(t, <-received, payload)
}

func TestConnectUnixPathTooLong(t *testing.T) {
	s, err := rawsock.New(rawsock.Unix(), rawsock.Stream(), rawsock.Protocol{})
	assert.NilError(t, err)

	err = s.ConnectUnix(strings.Repeat("x", 108))
	assert.ErrorIs(t, err, sockaddr.ErrPathTooLong)

	// Encoding failed before any native call; the socket is untouched and
	// still the only handle to release.
	fl, err := unix.FcntlInt(s.Handle(), unix.F_GETFL, 0)
	assert.NilError(t, err)
	assert.Assert(t, fl&unix.O_NONBLOCK != 0)
	assert.NilError(t, s.Close())
}

func TestIntoConnOwnsHandleExactlyOnce(t *testing.T) {
	s, err := rawsock.New(rawsock.IPv4(), rawsock.Stream(), rawsock.TCP())
	assert.NilError(t, err)

	conn := s.IntoConn()
	fd := conn.Handle()

	// Dropping the facade must not close the transferred handle.
	assert.NilError(t, s.Close())
	_, err = unix.FcntlInt(fd, unix.F_GETFL, 0)
	assert.NilError(t, err)

	assert.NilError(t, conn.Close())
	_, err = unix.FcntlInt(fd, unix.F_GETFL, 0)
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestSocketNonblockingBeforeConnect(t *testing.T) {
	s, err := rawsock.New(rawsock.IPv4(), rawsock.Stream(), rawsock.TCP())
	assert.NilError(t, err)
	defer s.Close()

	// A read on an unconnected non-blocking stream socket must not hang.
	buf := make([]byte, 1)
	_, err = unix.Read(int(s.Handle()), buf)
	assert.Assert(t, errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.ENOTCONN),
		"read on fresh socket returned %v", err)
}
