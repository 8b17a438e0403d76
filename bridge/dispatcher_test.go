//go:build !windows

package bridge_test

import (
	"testing"

	"github.com/momentics/hioload-fdio/bridge"
	"github.com/momentics/hioload-fdio/control"
)

func TestDispatcherDefaults(t *testing.T) {
	d := bridge.NewDispatcher(nil)
	if d.FastPath() != bridge.FastPathSupported() {
		t.Errorf("FastPath() = %v, platform support %v", d.FastPath(), bridge.FastPathSupported())
	}
	if d.SetFastPath(false) || d.FastPath() {
		t.Error("fast path should be disabled")
	}
}

func TestDispatcherFollowsConfig(t *testing.T) {
	cs := control.NewConfigStore()
	cs.SetConfigSync(map[string]any{bridge.ConfigFastPath: false})
	d := bridge.NewDispatcher(cs)
	if d.FastPath() {
		t.Fatal("fast path enabled despite config")
	}
	cs.SetConfigSync(map[string]any{bridge.ConfigFastPath: true})
	if d.FastPath() != bridge.FastPathSupported() {
		t.Error("reload did not enable fast path")
	}
}

func TestDispatcherTransfers(t *testing.T) {
	p := newPool(t)
	for _, fast := range []bool{false, true} {
		d := bridge.NewDispatcher(nil)
		d.SetFastPath(fast)
		a, b := socketPair(t)
		out := directBuf(t, p, 4)
		in := directBuf(t, p, 4)
		copy(out.Bytes(), "pong")
		if n := d.Write(a, out.Address(), 4); n != 4 {
			t.Fatalf("fast=%v write returned %d", fast, n)
		}
		if n := d.Read(b, in.Address(), 4); n != 4 || string(in.Bytes()) != "pong" {
			t.Fatalf("fast=%v read returned %d %q", fast, n, in.Bytes())
		}
	}
}
