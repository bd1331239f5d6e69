// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public socket facade: domain/type/protocol value objects and the Socket
// lifecycle (create, connect, convert, close).

package rawsock

import (
	"net/netip"

	"github.com/momentics/rawsock/internal/sys"
	"github.com/momentics/rawsock/sockaddr"
)

// Domain selects the address family of a socket.
type Domain struct {
	family int
}

// IPv4 returns the domain for IPv4 communication.
func IPv4() Domain { return Domain{family: sys.AFInet} }

// IPv6 returns the domain for IPv6 communication.
func IPv6() Domain { return Domain{family: sys.AFInet6} }

// Unix returns the domain for Unix-domain communication.
// Supported on POSIX platforms and on Windows 10+.
func Unix() Domain { return Domain{family: sys.AFUnix} }

// Type selects the communication semantics of a socket.
type Type struct {
	code int
}

// Stream returns the reliable byte-stream type, used for protocols such as TCP.
func Stream() Type { return Type{code: sys.SockStream} }

// Protocol selects the transport protocol. The zero value lets the OS pick
// the default protocol for the domain/type pair.
type Protocol struct {
	code int
}

// TCP returns the protocol corresponding to TCP.
func TCP() Protocol { return Protocol{code: sys.ProtoTCP} }

// Socket owns one native socket handle in non-blocking, close-on-exec state.
//
// A Socket is not safe for concurrent use; ownership transfer via IntoConn
// is the only sharing mechanism.
type Socket struct {
	raw *sys.RawSocket
}

// New creates a socket for the given domain, type and protocol and moves it
// into non-blocking mode. The close-on-exec flag is applied atomically with
// creation where the platform allows it, so no concurrently spawned child
// process can inherit the handle.
func New(domain Domain, typ Type, proto Protocol) (*Socket, error) {
	raw, err := sys.Open(domain.family, typ.code, proto.code)
	if err != nil {
		return nil, err
	}
	return &Socket{raw: raw}, nil
}

// Connect initiates a connection to an IPv4 or IPv6 endpoint.
//
// The socket is non-blocking, so Connect may fail with EINPROGRESS (or
// WSAEWOULDBLOCK on Windows); completing the connection by waiting for
// writability is the caller's responsibility.
func (s *Socket) Connect(ep netip.AddrPort) error {
	addr := sockaddr.FromAddrPort(ep)
	return s.ConnectAddr(addr)
}

// ConnectUnix initiates a connection to a Unix-domain endpoint. A path whose
// first byte is NUL names the abstract namespace (Linux). Fails with
// sockaddr.ErrPathTooLong before any native call if the path does not fit
// the platform's sockaddr_un.
func (s *Socket) ConnectUnix(path string) error {
	addr, err := sockaddr.Unix(path)
	if err != nil {
		return err
	}
	return s.ConnectAddr(addr)
}

// ConnectAddr initiates a connection using an already encoded address.
func (s *Socket) ConnectAddr(addr sockaddr.Addr) error {
	return s.raw.Connect(addr.Bytes())
}

// Handle returns the native handle without transferring ownership.
func (s *Socket) Handle() uintptr { return s.raw.Handle() }

// Close releases the native handle. Safe to call more than once and after
// IntoConn, in which case it does nothing.
func (s *Socket) Close() error { return s.raw.Close() }

// IntoConn consumes the socket and returns a stream backed by its handle.
// Ownership moves to the returned Conn; closing it is what releases the
// handle, and the Socket itself is left disarmed.
func (s *Socket) IntoConn() *Conn {
	return &Conn{handle: s.raw.Release()}
}
