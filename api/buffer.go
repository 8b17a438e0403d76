// Package api
// Author: momentics
//
// Direct (off-heap) memory buffers handed to the descriptor bridge.
//
// A direct buffer has a stable address for its entire lifetime, so its
// Address may be passed across the raw call boundary without pinning.

package api

// Buffer describes a fixed-address memory region owned by a pool.
type Buffer interface {
	// Bytes returns the full region as a slice. The slice aliases the region.
	Bytes() []byte

	// Address returns the start of the region as a raw address.
	Address() uint64

	// Len returns the region size in bytes.
	Len() int

	// Release returns the region to its pool.
	// After Release, buffer must not be used.
	Release()
}

// BufferPool abstracts direct memory region management.
type BufferPool interface {
	// Get returns a buffer of at least size bytes.
	Get(size int) (Buffer, error)

	// Put returns buffer to pool; buffer must not be used afterwards.
	Put(b Buffer)

	// Stats exposes allocation accounting.
	Stats() BufferPoolStats

	// Close unmaps every region the pool still holds.
	Close() error
}

// BufferPoolStats aggregates buffer allocation/reuse stats.
type BufferPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	Reused     int64
	FreeErrors int64
}
