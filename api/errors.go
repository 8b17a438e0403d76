// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared by hioload-fdio packages.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrBufferPoolClosed = fmt.Errorf("buffer pool is closed")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrNotSupported     = fmt.Errorf("operation not supported")
	ErrNoDescriptor     = fmt.Errorf("connection exposes no descriptor")
)
