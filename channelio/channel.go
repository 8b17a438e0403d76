// File: channelio/channel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"io"
	"math"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-fdio/api"
	"github.com/momentics/hioload-fdio/control"
	"github.com/sirupsen/logrus"
)

// Channel moves bytes between one descriptor and direct buffers. It does not
// own the descriptor. A Channel is safe for one reader and one writer
// goroutine at a time.
type Channel struct {
	fd     int32
	bridge api.Bridge
	log    logrus.FieldLogger
	stats  Stats
}

// Stats counts channel traffic.
type Stats struct {
	BytesRead    atomic.Int64
	BytesWritten atomic.Int64
	WouldBlock   atomic.Int64
	Errors       atomic.Int64
}

// ChannelOption customizes a Channel.
type ChannelOption func(*Channel)

// WithLogger enables debug logging of failed transfers and end of stream.
func WithLogger(l logrus.FieldLogger) ChannelOption {
	return func(c *Channel) {
		c.log = l
	}
}

// New creates a channel over fd using br for every transfer.
func New(fd int32, br api.Bridge, opts ...ChannelOption) *Channel {
	c := &Channel{fd: fd, bridge: br}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FD returns the descriptor.
func (c *Channel) FD() int32 { return c.fd }

// Stats returns the live counters.
func (c *Channel) Stats() *Stats { return &c.stats }

// ReadInto issues one read into the cursor window.
//
// It returns (n, nil) with n > 0 on progress, (0, nil) when the descriptor
// would block or the window is empty, (0, io.EOF) at end of stream, and a
// classified error otherwise.
func (c *Channel) ReadInto(cur *Cursor) (int, error) {
	addr, length := cur.span()
	n := c.bridge.Read(c.fd, addr, length)
	switch {
	case n > 0:
		cur.pos += int(n)
		c.stats.BytesRead.Add(int64(n))
		return int(n), nil
	case n == 0:
		if length == 0 {
			return 0, nil
		}
		c.debug(opRead, "end of stream", 0)
		return 0, io.EOF
	default:
		return 0, c.fail(opRead, n)
	}
}

// WriteFrom issues one write from the cursor window. Short writes advance
// the cursor by what was sent; would-block returns (0, nil).
func (c *Channel) WriteFrom(cur *Cursor) (int, error) {
	addr, length := cur.span()
	n := c.bridge.Write(c.fd, addr, length)
	if n >= 0 {
		cur.pos += int(n)
		c.stats.BytesWritten.Add(int64(n))
		return int(n), nil
	}
	return 0, c.fail(opWrite, n)
}

// WriteBytes issues one write straight from p, with the same outcomes as
// WriteFrom. Heap slices do not move, so p needs no staging copy.
func (c *Channel) WriteBytes(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	length := int32(min(len(p), math.MaxInt32))
	n := c.bridge.Write(c.fd, uint64(uintptr(unsafe.Pointer(&p[0]))), length)
	runtime.KeepAlive(p)
	if n >= 0 {
		c.stats.BytesWritten.Add(int64(n))
		return int(n), nil
	}
	return 0, c.fail(opWrite, n)
}

func (c *Channel) fail(op string, result int32) error {
	err := Decode(op, c.fd, result)
	if err == nil {
		c.stats.WouldBlock.Add(1)
		return nil
	}
	c.stats.Errors.Add(1)
	c.debug(op, err.Error(), -result)
	return err
}

func (c *Channel) debug(op, msg string, errno int32) {
	if c.log == nil {
		return
	}
	c.log.WithFields(logrus.Fields{
		"fd":    c.fd,
		"op":    op,
		"errno": errno,
	}).Debug(msg)
}

// Report adds the counters accumulated since the last report to reg and
// resets them.
func (c *Channel) Report(reg *control.MetricsRegistry) {
	reg.Add("channel.bytes_read", c.stats.BytesRead.Swap(0))
	reg.Add("channel.bytes_written", c.stats.BytesWritten.Swap(0))
	reg.Add("channel.would_block", c.stats.WouldBlock.Swap(0))
	reg.Add("channel.errors", c.stats.Errors.Swap(0))
}
