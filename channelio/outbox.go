// File: channelio/outbox.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"fmt"

	"github.com/eapache/queue"
	"github.com/momentics/hioload-fdio/api"
)

// Outbox is a FIFO of direct buffers awaiting transmission. Drain sends as
// much as the descriptor accepts without blocking and keeps the partially
// written head for the next call. Sent buffers are released.
//
// Outbox is not safe for concurrent use.
type Outbox struct {
	ch      *Channel
	q       *queue.Queue
	pending int
}

// NewOutbox creates an empty outbox writing through ch.
func NewOutbox(ch *Channel) *Outbox {
	return &Outbox{ch: ch, q: queue.New()}
}

// Enqueue appends the first n bytes of b. The outbox takes ownership of b.
func (o *Outbox) Enqueue(b api.Buffer, n int) error {
	if n < 0 || n > b.Len() {
		return fmt.Errorf("outbox enqueue %d of %d: %w", n, b.Len(), api.ErrInvalidArgument)
	}
	if n == 0 {
		b.Release()
		return nil
	}
	o.q.Add(&Cursor{buf: b, limit: n})
	o.pending += n
	return nil
}

// Len returns the number of queued buffers.
func (o *Outbox) Len() int { return o.q.Length() }

// Pending returns the number of bytes not yet sent.
func (o *Outbox) Pending() int { return o.pending }

// Drain writes queued buffers in order. It returns true when the queue is
// empty, false when the descriptor stopped accepting bytes.
func (o *Outbox) Drain() (bool, error) {
	for o.q.Length() > 0 {
		cur := o.q.Peek().(*Cursor)
		n, err := o.ch.WriteFrom(cur)
		o.pending -= n
		if err != nil {
			return false, err
		}
		if cur.Remaining() == 0 {
			o.q.Remove()
			cur.buf.Release()
			continue
		}
		if n == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Discard releases every queued buffer without sending it.
func (o *Outbox) Discard() {
	for o.q.Length() > 0 {
		o.q.Remove().(*Cursor).buf.Release()
	}
	o.pending = 0
}
