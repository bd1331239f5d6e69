// Package sockaddr
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pure encoding of typed endpoints into the kernel's native socket-address
// layout. An Addr holds a fixed-capacity byte image plus the logical length
// the native call must be given; nothing here touches the OS. The family
// word, path offset and size limits come from per-platform constant files.

package sockaddr

import (
	"encoding/binary"
	"net"
	"net/netip"
	"strconv"
)

// Addr is a platform-native socket address: a fixed-capacity buffer sized
// for the largest native representation (sockaddr_storage) and the number
// of leading bytes that are meaningful. Bytes beyond Len are unspecified.
// Immutable after construction.
type Addr struct {
	buf [capacity]byte
	n   int
}

// Len returns the logical length of the encoded address in bytes.
func (a *Addr) Len() int { return a.n }

// Bytes returns the leading Len bytes of the address image. The slice is
// passed to native connect/bind calls and must not be modified.
func (a *Addr) Bytes() []byte { return a.buf[:a.n] }

// Inet4 encodes an IPv4 endpoint as a sockaddr_in image.
func Inet4(ip [4]byte, port uint16) Addr {
	var a Addr
	binary.BigEndian.PutUint16(a.buf[2:4], port)
	copy(a.buf[4:8], ip[:])
	a.n = sizeofInet4
	putHeader(a.buf[:], familyInet, a.n)
	return a
}

// Inet6 encodes an IPv6 endpoint as a sockaddr_in6 image. Flow info and
// scope id are stored in the kernel's native byte order, the port in
// network byte order.
func Inet6(ip [16]byte, port uint16, flowinfo, scopeID uint32) Addr {
	var a Addr
	binary.BigEndian.PutUint16(a.buf[2:4], port)
	binary.NativeEndian.PutUint32(a.buf[4:8], flowinfo)
	copy(a.buf[8:24], ip[:])
	binary.NativeEndian.PutUint32(a.buf[24:28], scopeID)
	a.n = sizeofInet6
	putHeader(a.buf[:], familyInet6, a.n)
	return a
}

// FromAddrPort encodes a netip endpoint, picking the family from the
// address. IPv4-mapped IPv6 addresses encode as plain IPv4. A non-numeric
// IPv6 zone is resolved to its interface index; an unknown zone encodes as
// scope id zero, matching the standard library's lookup behavior.
func FromAddrPort(ep netip.AddrPort) Addr {
	ip := ep.Addr()
	if ip.Is4() || ip.Is4In6() {
		return Inet4(ip.As4(), ep.Port())
	}
	return Inet6(ip.As16(), ep.Port(), 0, zoneScope(ip.Zone()))
}

func zoneScope(zone string) uint32 {
	if zone == "" {
		return 0
	}
	if n, err := strconv.ParseUint(zone, 10, 32); err == nil {
		return uint32(n)
	}
	if ifi, err := net.InterfaceByName(zone); err == nil {
		return uint32(ifi.Index)
	}
	return 0
}

// Unix encodes a Unix-domain path as a sockaddr_un image.
//
// A regular path must be strictly shorter than the path buffer so a NUL
// terminator fits; the terminator is counted in Len. A path starting with
// NUL names the abstract namespace: no terminator is appended and the path
// may fill the buffer exactly. The empty path also gets no terminator.
func Unix(path string) (Addr, error) {
	abstract := len(path) > 0 && path[0] == 0
	if abstract {
		if len(path) > unixPathMax {
			return Addr{}, ErrPathTooLong
		}
	} else if len(path) >= unixPathMax {
		return Addr{}, ErrPathTooLong
	}

	var a Addr
	copy(a.buf[unixPathOffset:], path)
	a.n = unixPathOffset + len(path)
	if !abstract && len(path) > 0 {
		a.n++ // terminator byte is already zero
	}
	putHeader(a.buf[:], familyUnix, a.n)
	return a, nil
}
