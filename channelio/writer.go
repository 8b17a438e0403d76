// File: channelio/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"context"
	"runtime"

	"github.com/momentics/hioload-fdio/api"
)

// Writer is a buffered io.Writer over a channel backed by a direct buffer.
// Payloads are staged in the buffer and sent on Flush or when the buffer
// fills. Payloads larger than the buffer bypass it. Flush keeps issuing
// writes until the buffer is empty, yielding the processor whenever the
// descriptor would block.
type Writer struct {
	ch  *Channel
	cur *Cursor
}

// NewWriter creates a writer staging into buf. The writer does not release
// buf.
func NewWriter(ch *Channel, buf api.Buffer) *Writer {
	return &Writer{ch: ch, cur: NewCursor(buf)}
}

// Buffered returns the number of staged bytes.
func (w *Writer) Buffered() int { return w.cur.Position() }

// Available returns the free staging space.
func (w *Writer) Available() int { return w.cur.Remaining() }

// Write stages p, flushing as often as needed to fit it. A payload larger
// than the whole buffer is sent directly after the staged bytes.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) > w.cur.buf.Len() {
		if err := w.Flush(); err != nil {
			return 0, err
		}
		return w.writeDirect(p)
	}
	written := 0
	for len(p) > 0 {
		if w.cur.Remaining() == 0 {
			if err := w.Flush(); err != nil {
				return written, err
			}
		}
		n := w.cur.Put(p)
		written += n
		p = p[n:]
	}
	return written, nil
}

func (w *Writer) writeDirect(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := w.ch.WriteBytes(p[written:])
		if err != nil {
			return written, err
		}
		if n == 0 {
			runtime.Gosched()
		}
		written += n
	}
	return written, nil
}

// WriteByte stages a single byte.
func (w *Writer) WriteByte(b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// Flush sends every staged byte.
func (w *Writer) Flush() error {
	return w.FlushContext(context.Background())
}

// FlushContext is Flush that gives up when ctx is done. On failure the
// unsent bytes stay staged in order.
func (w *Writer) FlushContext(ctx context.Context) error {
	if w.cur.Position() == 0 {
		return nil
	}
	w.cur.Flip()
	for w.cur.Remaining() > 0 {
		n, err := w.ch.WriteFrom(w.cur)
		if err != nil {
			w.cur.Compact()
			return err
		}
		if n == 0 {
			if err := ctx.Err(); err != nil {
				w.cur.Compact()
				return err
			}
			runtime.Gosched()
		}
	}
	w.cur.Clear()
	return nil
}
