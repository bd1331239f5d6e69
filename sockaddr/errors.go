// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the sockaddr package.

package sockaddr

import "errors"

var (
	// ErrPathTooLong indicates a Unix-domain path that does not fit the
	// platform's sockaddr_un path buffer. Detected before any native call.
	ErrPathTooLong = errors.New("unix socket path too long for sockaddr_un")
)
