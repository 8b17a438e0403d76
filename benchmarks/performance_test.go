//go:build !windows

// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-fdio components.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-fdio/bridge"
	"github.com/momentics/hioload-fdio/channelio"
	"github.com/momentics/hioload-fdio/pool"
	"golang.org/x/sys/unix"
)

func socketPair(b *testing.B) (int32, int32) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	})
	for _, fd := range fds {
		if err := unix.SetNonblock(fd, true); err != nil {
			b.Fatal(err)
		}
	}
	return int32(fds[0]), int32(fds[1])
}

// BenchmarkDirectPoolAllocation tests direct buffer pool allocation performance.
func BenchmarkDirectPoolAllocation(b *testing.B) {
	p := pool.NewDirectPool(0)
	defer p.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf, err := p.Get(4096)
			if err != nil {
				b.Fatal(err)
			}
			buf.Release()
		}
	})
}

// benchRoundTrip pushes 64-byte messages across a socket pair, one write
// and one read per iteration.
func benchRoundTrip(b *testing.B, fast bool) {
	a, c := socketPair(b)
	p := pool.NewDirectPool(0)
	defer p.Close()
	out, err := p.Get(64)
	if err != nil {
		b.Fatal(err)
	}
	defer out.Release()
	in, err := p.Get(64)
	if err != nil {
		b.Fatal(err)
	}
	defer in.Release()

	d := bridge.NewDispatcher(nil)
	d.SetFastPath(fast)
	b.SetBytes(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := d.Write(a, out.Address(), 64); n != 64 {
			b.Fatalf("write returned %d", n)
		}
		if n := d.Read(c, in.Address(), 64); n != 64 {
			b.Fatalf("read returned %d", n)
		}
	}
}

func BenchmarkRoundTripStandard(b *testing.B) { benchRoundTrip(b, false) }
func BenchmarkRoundTripFast(b *testing.B)     { benchRoundTrip(b, true) }

// BenchmarkWriterFlush tests buffered writer throughput through the channel layer.
func BenchmarkWriterFlush(b *testing.B) {
	a, c := socketPair(b)
	p := pool.NewDirectPool(0)
	defer p.Close()
	wbuf, err := p.Get(4096)
	if err != nil {
		b.Fatal(err)
	}
	defer wbuf.Release()
	rbuf, err := p.Get(4096)
	if err != nil {
		b.Fatal(err)
	}
	defer rbuf.Release()

	d := bridge.NewDispatcher(nil)
	w := channelio.NewWriter(channelio.New(a, d), wbuf)
	r := channelio.New(c, d)
	cur := channelio.NewCursor(rbuf)
	msg := []byte("PUB subject 5\r\nhello\r\n")

	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Write(msg); err != nil {
			b.Fatal(err)
		}
		if err := w.Flush(); err != nil {
			b.Fatal(err)
		}
		cur.Clear()
		if _, err := r.ReadInto(cur); err != nil {
			b.Fatal(err)
		}
	}
}
