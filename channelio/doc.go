// File: channelio/doc.go
// Package channelio
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer-level helpers over the descriptor bridge for transport code.
//
// A Channel pairs a descriptor with an api.Bridge and moves bytes between
// the descriptor and a Cursor, a position/limit view over a direct buffer.
// This is the layer that turns the bridge's negated error codes into
// classified errors: would-block becomes zero progress, end of stream
// becomes io.EOF, and everything else is one of ErrPeerClosed,
// ErrBadDescriptor, ErrInterrupted or ErrIO wrapping the platform code.
//
// Writer buffers small writes and flushes them with short-write looping.
// Outbox queues whole buffers for event loops that drain on writability.
package channelio
