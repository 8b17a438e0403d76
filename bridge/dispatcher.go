// File: bridge/dispatcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Config-driven selection between the standard and fast conventions.

package bridge

import (
	"sync/atomic"

	"github.com/momentics/hioload-fdio/api"
)

// ConfigFastPath is the configuration key enabling fast-path dispatch.
const ConfigFastPath = "bridge.fastpath"

// Dispatcher implements api.Bridge and routes each call through the fast
// convention when it is both enabled and supported by the platform.
type Dispatcher struct {
	fast atomic.Bool
}

var _ api.Bridge = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher. With a nil source the fast path is
// enabled whenever the platform supports it. With a source, the
// ConfigFastPath key is read now and again on every reload.
func NewDispatcher(src api.ConfigSource) *Dispatcher {
	d := &Dispatcher{}
	if src == nil {
		d.SetFastPath(true)
		return d
	}
	apply := func() { d.SetFastPath(src.Bool(ConfigFastPath, true)) }
	apply()
	src.OnReload(apply)
	return d
}

// SetFastPath requests fast-path dispatch and returns the effective setting,
// which stays false on platforms without a reduced-overhead convention.
func (d *Dispatcher) SetFastPath(on bool) bool {
	on = on && fastPathSupported
	d.fast.Store(on)
	return on
}

// FastPath reports whether calls currently use the fast convention.
func (d *Dispatcher) FastPath() bool {
	return d.fast.Load()
}

// Read dispatches to ReadFast or Read.
func (d *Dispatcher) Read(fd int32, address uint64, length int32) int32 {
	if d.fast.Load() {
		return transfer(convFast, opRead, fd, address, length)
	}
	return transfer(convStandard, opRead, fd, address, length)
}

// Write dispatches to WriteFast or Write.
func (d *Dispatcher) Write(fd int32, address uint64, length int32) int32 {
	if d.fast.Load() {
		return transfer(convFast, opWrite, fd, address, length)
	}
	return transfer(convStandard, opWrite, fd, address, length)
}
