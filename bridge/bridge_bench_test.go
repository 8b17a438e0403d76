//go:build !windows

package bridge_test

import (
	"testing"

	"github.com/momentics/hioload-fdio/bridge"
	"golang.org/x/sys/unix"
)

func devNull(b *testing.B) int32 {
	fd, err := unix.Open("/dev/null", unix.O_WRONLY, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = unix.Close(fd) })
	return int32(fd)
}

func BenchmarkNop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bridge.Nop(0, 0, 64)
	}
}

func BenchmarkWrite(b *testing.B) {
	fd := devNull(b)
	buf := directBuf(b, newPool(b), 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := bridge.Write(fd, buf.Address(), 64); n != 64 {
			b.Fatalf("write returned %d", n)
		}
	}
}

func BenchmarkWriteFast(b *testing.B) {
	fd := devNull(b)
	buf := directBuf(b, newPool(b), 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := bridge.WriteFast(fd, buf.Address(), 64); n != 64 {
			b.Fatalf("write returned %d", n)
		}
	}
}
