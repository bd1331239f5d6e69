// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package rawsock

// Conn is the stream type a connected Socket converts into. It reads and
// writes directly on the native handle and owns it exclusively: exactly one
// close is issued, by Close.
//
// The handle stays non-blocking; Read and Write surface EAGAIN-class errors
// verbatim for the caller's readiness layer to handle.
type Conn struct {
	handle uintptr
}

// Read reads from the socket into buf.
func (c *Conn) Read(buf []byte) (int, error) {
	return readSocket(c.handle, buf)
}

// Write writes buf to the socket.
func (c *Conn) Write(buf []byte) (int, error) {
	return writeSocket(c.handle, buf)
}

// Close releases the native handle.
func (c *Conn) Close() error {
	return closeSocket(c.handle)
}

// Handle returns the native handle without transferring ownership.
func (c *Conn) Handle() uintptr { return c.handle }
