// File: api/bridge.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw descriptor I/O contract shared by the native bridge, fakes and the
// channel helpers built on top of it.

package api

// Bridge moves bytes between a descriptor and a caller-owned memory region.
//
// Every method performs at most one system call and returns either the
// number of bytes transferred (>= 0) or the negated platform error code.
// The caller keeps the region alive and unmoved for the duration of the call.
type Bridge interface {
	// Read stores up to length bytes from fd at address.
	Read(fd int32, address uint64, length int32) int32

	// Write sends up to length bytes starting at address to fd.
	Write(fd int32, address uint64, length int32) int32

	// FastPath reports whether calls are dispatched through the
	// reduced-overhead convention.
	FastPath() bool
}
