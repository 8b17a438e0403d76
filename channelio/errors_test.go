//go:build !windows

package channelio_test

import (
	"testing"

	"github.com/momentics/hioload-fdio/channelio"
	"golang.org/x/sys/unix"
)

func TestDecode(t *testing.T) {
	if err := channelio.Decode("read", 1, 12); err != nil {
		t.Errorf("positive result decoded to %v", err)
	}
	if err := channelio.Decode("read", 1, -int32(unix.EAGAIN)); err != nil {
		t.Errorf("would-block decoded to %v", err)
	}
	if err := channelio.Decode("write", 1, -int32(unix.EPIPE)); !channelio.IsPeerClosed(err) {
		t.Errorf("EPIPE decoded to %v", err)
	}
}

func TestIsWouldBlock(t *testing.T) {
	if !channelio.IsWouldBlock(-int32(unix.EWOULDBLOCK)) {
		t.Error("EWOULDBLOCK not recognised")
	}
	if channelio.IsWouldBlock(0) || channelio.IsWouldBlock(-int32(unix.EBADF)) {
		t.Error("false positive")
	}
}
