//go:build !windows

package channelio_test

import (
	"testing"

	"github.com/momentics/hioload-fdio/api"
	"github.com/momentics/hioload-fdio/channelio"
	"github.com/momentics/hioload-fdio/fake"
	"github.com/momentics/hioload-fdio/pool"
	"golang.org/x/sys/unix"
)

func fill(t *testing.T, p *pool.DirectPool, s string) api.Buffer {
	t.Helper()
	b, err := p.Get(len(s) + 8)
	if err != nil {
		t.Fatal(err)
	}
	copy(b.Bytes(), s)
	return b
}

func TestOutboxDrainsInOrder(t *testing.T) {
	p := pool.NewDirectPool(0)
	defer p.Close()
	fb := fake.NewBridge()
	// head goes out partially, then the socket is full
	fb.QueueWrite(2, -int32(unix.EAGAIN))
	ob := channelio.NewOutbox(channelio.New(9, fb))

	for _, s := range []string{"MSG ", "foo ", "1\r\n"} {
		if err := ob.Enqueue(fill(t, p, s), len(s)); err != nil {
			t.Fatal(err)
		}
	}
	if ob.Len() != 3 || ob.Pending() != 11 {
		t.Fatalf("len=%d pending=%d", ob.Len(), ob.Pending())
	}
	done, err := ob.Drain()
	if done || err != nil {
		t.Fatalf("first drain = %v, %v", done, err)
	}
	if ob.Pending() != 9 {
		t.Errorf("pending = %d, want 9", ob.Pending())
	}
	done, err = ob.Drain()
	if !done || err != nil {
		t.Fatalf("second drain = %v, %v", done, err)
	}
	if string(fb.Written()) != "MSG foo 1\r\n" {
		t.Errorf("written %q", fb.Written())
	}
	if st := p.Stats(); st.InUse != 0 {
		t.Errorf("buffers not released: %+v", st)
	}
}

func TestOutboxErrorAndDiscard(t *testing.T) {
	p := pool.NewDirectPool(0)
	defer p.Close()
	fb := fake.NewBridge()
	fb.QueueWrite(-int32(unix.ECONNRESET))
	ob := channelio.NewOutbox(channelio.New(9, fb))
	_ = ob.Enqueue(fill(t, p, "data"), 4)

	if _, err := ob.Drain(); !channelio.IsPeerClosed(err) {
		t.Fatalf("Drain error = %v", err)
	}
	ob.Discard()
	if ob.Len() != 0 || ob.Pending() != 0 || p.Stats().InUse != 0 {
		t.Error("discard left state behind")
	}
}

func TestOutboxEnqueueValidation(t *testing.T) {
	p := pool.NewDirectPool(0)
	defer p.Close()
	ob := channelio.NewOutbox(channelio.New(9, fake.NewBridge()))
	b := fill(t, p, "x")
	if err := ob.Enqueue(b, b.Len()+1); err == nil {
		t.Error("oversized enqueue accepted")
	}
	if err := ob.Enqueue(b, 0); err != nil || ob.Len() != 0 {
		t.Error("empty enqueue should release and skip")
	}
}
