// Package rawsock
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-platform construction of non-blocking stream sockets.
//
// rawsock creates a socket with close-on-exec and non-blocking mode applied
// before the handle is visible to any other thread, encodes IPv4, IPv6 and
// Unix-domain endpoints into the kernel's native sockaddr layout, issues the
// raw connect, and hands the connected handle off to a stream type. Driving
// a non-blocking connect to completion (waiting for writability) is the
// caller's job; rawsock performs no polling, buffering or retries.
package rawsock
