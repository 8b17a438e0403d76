// File: fake/bridge.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"sync"
	"syscall"
	"unsafe"

	"github.com/momentics/hioload-fdio/api"
)

// Call records one bridge invocation.
type Call struct {
	Op      string
	FD      int32
	Address uint64
	Length  int32
}

// step is one scripted outcome. For reads, data is copied into the region.
type step struct {
	result int32
	data   []byte
}

// Bridge is a scripted api.Bridge. Reads return queued payloads or results
// and fall back to Idle. Writes return queued results and otherwise accept
// the whole region. Accepted write bytes are captured.
type Bridge struct {
	mu      sync.Mutex
	reads   []step
	writes  []step
	calls   []Call
	written []byte

	// Idle is returned by Read when nothing is queued. Defaults to -EAGAIN.
	Idle int32
	// Fast is reported by FastPath.
	Fast bool
}

var _ api.Bridge = (*Bridge)(nil)

// NewBridge creates a fake bridge with an empty script.
func NewBridge() *Bridge {
	return &Bridge{Idle: -int32(syscall.EAGAIN)}
}

// QueueRead schedules a read delivering data.
func (b *Bridge) QueueRead(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reads = append(b.reads, step{result: int32(len(data)), data: append([]byte(nil), data...)})
}

// QueueReadResult schedules a read returning result without data,
// e.g. 0 for end of stream or a negated errno.
func (b *Bridge) QueueReadResult(result int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reads = append(b.reads, step{result: result})
}

// QueueWrite schedules a write result. A non-negative result accepts that
// many bytes, capped to the requested length.
func (b *Bridge) QueueWrite(results ...int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range results {
		b.writes = append(b.writes, step{result: r})
	}
}

// Read implements api.Bridge.
func (b *Bridge) Read(fd int32, address uint64, length int32) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, Call{Op: "read", FD: fd, Address: address, Length: length})
	if len(b.reads) == 0 {
		return b.Idle
	}
	s := b.reads[0]
	b.reads = b.reads[1:]
	if s.result <= 0 {
		return s.result
	}
	n := min(s.result, length)
	copy(region(address, n), s.data[:n])
	if n < s.result {
		// undelivered tail stays queued, as a socket would keep it
		b.reads = append([]step{{result: s.result - n, data: s.data[n:]}}, b.reads...)
	}
	return n
}

// Write implements api.Bridge.
func (b *Bridge) Write(fd int32, address uint64, length int32) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, Call{Op: "write", FD: fd, Address: address, Length: length})
	n := length
	if len(b.writes) > 0 {
		s := b.writes[0]
		b.writes = b.writes[1:]
		if s.result < 0 {
			return s.result
		}
		n = min(s.result, length)
	}
	b.written = append(b.written, region(address, n)...)
	return n
}

// FastPath implements api.Bridge.
func (b *Bridge) FastPath() bool { return b.Fast }

// Written returns a copy of every byte accepted by Write.
func (b *Bridge) Written() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.written...)
}

// Calls returns a copy of the call log.
func (b *Bridge) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

func region(address uint64, n int32) []byte {
	if n <= 0 {
		return nil
	}
	// address is a live region of at least n bytes, guaranteed by the caller.
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), int(n))
}
