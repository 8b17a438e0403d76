// File: pool/direct.go
// Author: momentics <momentics@gmail.com>
//
// Size-classed pool of off-heap buffers with stable addresses.

package pool

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-fdio/api"
)

const (
	// minClass is the smallest region handed out; one page on common targets.
	minClass = 4096
	// defaultIdle bounds the cached regions kept per size class.
	defaultIdle = 64
)

// directBuffer implements api.Buffer over a mapped region.
type directBuffer struct {
	region []byte // whole mapping, len == size class
	size   int
	pool   *DirectPool
	used   atomic.Bool
}

func (b *directBuffer) Bytes() []byte   { return b.region[:b.size] }
func (b *directBuffer) Len() int        { return b.size }
func (b *directBuffer) Address() uint64 { return uint64(uintptr(unsafe.Pointer(&b.region[0]))) }

// Release returns the buffer to the pool. Repeated calls are no-ops.
func (b *directBuffer) Release() {
	if b.used.CompareAndSwap(true, false) {
		b.pool.recycle(b)
	}
}

// DirectPool hands out off-heap buffers grouped by size class.
type DirectPool struct {
	mu      sync.Mutex
	classes map[int]chan *directBuffer
	maxIdle int
	closed  bool
	unmap   func([]byte) error
	// freeErr holds the first unmap failure seen outside Close.
	freeErr error

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
	reused     atomic.Int64
	freeErrors atomic.Int64
}

var _ api.BufferPool = (*DirectPool)(nil)

// NewDirectPool creates a pool caching up to maxIdle regions per class.
// maxIdle <= 0 selects the default.
func NewDirectPool(maxIdle int) *DirectPool {
	if maxIdle <= 0 {
		maxIdle = defaultIdle
	}
	return &DirectPool{
		classes: make(map[int]chan *directBuffer),
		maxIdle: maxIdle,
		unmap:   unmapRegion,
	}
}

// classOf rounds size up to the next power of two, at least minClass.
func classOf(size int) int {
	c := minClass
	for c < size {
		c <<= 1
	}
	return c
}

// Get returns a buffer of exactly size bytes backed by a region of the
// enclosing size class. Contents of reused regions are not cleared.
func (p *DirectPool) Get(size int) (api.Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("direct pool get %d: %w", size, api.ErrInvalidArgument)
	}
	class := classOf(size)
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, api.ErrBufferPoolClosed
	}
	select {
	case b := <-p.classLocked(class):
		p.mu.Unlock()
		b.size = size
		b.used.Store(true)
		p.reused.Add(1)
		p.inUse.Add(1)
		return b, nil
	default:
	}
	p.mu.Unlock()

	region, err := mapRegion(class)
	if err != nil {
		return nil, fmt.Errorf("direct pool map %d: %w", class, err)
	}
	b := &directBuffer{region: region, size: size, pool: p}
	b.used.Store(true)
	p.totalAlloc.Add(1)
	p.inUse.Add(1)
	return b, nil
}

// Put returns a buffer obtained from this pool.
func (p *DirectPool) Put(b api.Buffer) {
	if b != nil {
		b.Release()
	}
}

// Stats returns allocation counters.
func (p *DirectPool) Stats() api.BufferPoolStats {
	return api.BufferPoolStats{
		TotalAlloc: p.totalAlloc.Load(),
		TotalFree:  p.totalFree.Load(),
		InUse:      p.inUse.Load(),
		Reused:     p.reused.Load(),
		FreeErrors: p.freeErrors.Load(),
	}
}

// Close unmaps every cached region. Buffers still in use are unmapped when
// released. The first unmap failure, including ones from earlier releases,
// is returned.
func (p *DirectPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	firstErr := p.freeErr
	p.freeErr = nil
	for _, ch := range p.classes {
	drain:
		for {
			select {
			case b := <-ch:
				if err := p.free(b); err != nil && firstErr == nil {
					firstErr = err
				}
			default:
				break drain
			}
		}
	}
	return firstErr
}

func (p *DirectPool) classLocked(class int) chan *directBuffer {
	ch, ok := p.classes[class]
	if !ok {
		ch = make(chan *directBuffer, p.maxIdle)
		p.classes[class] = ch
	}
	return ch
}

func (p *DirectPool) recycle(b *directBuffer) {
	p.inUse.Add(-1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.keepErr(p.free(b))
		return
	}
	select {
	case p.classLocked(len(b.region)) <- b:
	default:
		p.keepErr(p.free(b))
	}
}

// keepErr records an unmap failure from a release. Caller holds mu.
func (p *DirectPool) keepErr(err error) {
	if err != nil && p.freeErr == nil {
		p.freeErr = err
	}
}

func (p *DirectPool) free(b *directBuffer) error {
	p.totalFree.Add(1)
	if err := p.unmap(b.region); err != nil {
		p.freeErrors.Add(1)
		return fmt.Errorf("direct pool unmap %d: %w", len(b.region), err)
	}
	return nil
}
