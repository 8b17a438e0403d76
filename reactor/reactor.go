// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral readiness reactor interface.

package reactor

import "time"

// Interest selects the readiness conditions a descriptor is watched for.
type Interest uint8

const (
	Readable Interest = 1 << iota
	Writable
)

// Event reports readiness of one descriptor.
type Event struct {
	FD       int32
	Readable bool
	Writable bool
	// Hangup is set on error or peer hangup; a read will report the cause.
	Hangup bool
}

// EventReactor watches descriptors for readiness. Registration never takes
// ownership of a descriptor.
type EventReactor interface {
	// Register starts watching fd for the given interest.
	Register(fd int32, in Interest) error

	// Modify replaces the interest set of a registered fd.
	Modify(fd int32, in Interest) error

	// Unregister stops watching fd.
	Unregister(fd int32) error

	// Wait blocks up to timeout (negative: forever) and fills events.
	// It returns 0 on timeout or signal interruption.
	Wait(events []Event, timeout time.Duration) (int, error)

	// Close cleans up resources.
	Close() error
}
