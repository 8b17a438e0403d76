//go:build !linux
// +build !linux

// File: reactor/reactor_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.

package reactor

import (
	"fmt"

	"github.com/momentics/hioload-fdio/api"
)

// NewReactor returns an error for unsupported platforms.
func NewReactor() (EventReactor, error) {
	return nil, fmt.Errorf("reactor: %w on this platform", api.ErrNotSupported)
}
