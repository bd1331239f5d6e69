// Package sys
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform socket primitive: creation of non-blocking, close-on-exec
// handles, raw connect on encoded address images, and single-owner handle
// teardown. One backend per platform family is selected at build time;
// everything above this package is platform independent.
package sys
