// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Descriptor-level connection abstraction and the configuration contract
// consumed by the bridge and channel helpers.

package api

// FDConn exposes the OS descriptor backing a connection. Ownership stays
// with the implementation; consumers must not close the returned value.
type FDConn interface {
	// RawFD returns the underlying OS-level file descriptor
	RawFD() int32
}

// ConfigSource is the read side of a dynamic configuration store.
type ConfigSource interface {
	// Bool returns the value stored under key, or def when absent or malformed.
	Bool(key string, def bool) bool

	// Int returns the value stored under key, or def when absent or malformed.
	Int(key string, def int) int

	// OnReload registers fn to run after every configuration change.
	OnReload(fn func())
}
