// File: channelio/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"math"

	"github.com/momentics/hioload-fdio/api"
)

// Cursor is a position/limit window over a direct buffer. Reads fill
// [pos, limit) and writes drain it; both advance pos by the transferred count.
type Cursor struct {
	buf   api.Buffer
	pos   int
	limit int
}

// NewCursor returns a cursor spanning the whole buffer.
func NewCursor(b api.Buffer) *Cursor {
	return &Cursor{buf: b, limit: b.Len()}
}

func (c *Cursor) Buffer() api.Buffer { return c.buf }
func (c *Cursor) Position() int      { return c.pos }
func (c *Cursor) Limit() int         { return c.limit }
func (c *Cursor) Remaining() int     { return c.limit - c.pos }

// Bytes returns the pending window [pos, limit).
func (c *Cursor) Bytes() []byte { return c.buf.Bytes()[c.pos:c.limit] }

// Put copies p into the window and advances pos. It returns the number of
// bytes copied, which is short when the window is smaller than p.
func (c *Cursor) Put(p []byte) int {
	n := copy(c.buf.Bytes()[c.pos:c.limit], p)
	c.pos += n
	return n
}

// Flip turns a filled window into a drainable one.
func (c *Cursor) Flip() {
	c.limit = c.pos
	c.pos = 0
}

// Clear resets the window to the whole buffer.
func (c *Cursor) Clear() {
	c.pos = 0
	c.limit = c.buf.Len()
}

// Compact moves unread bytes to the front and reopens the rest for filling.
func (c *Cursor) Compact() {
	n := copy(c.buf.Bytes(), c.buf.Bytes()[c.pos:c.limit])
	c.pos = n
	c.limit = c.buf.Len()
}

// span returns the raw address and a length capped to one bridge call.
func (c *Cursor) span() (uint64, int32) {
	n := c.Remaining()
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	return c.buf.Address() + uint64(c.pos), int32(n)
}
