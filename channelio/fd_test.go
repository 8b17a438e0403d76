//go:build !windows

package channelio_test

import (
	"io"
	"net"
	"testing"

	"github.com/momentics/hioload-fdio/api"
	"github.com/momentics/hioload-fdio/bridge"
	"github.com/momentics/hioload-fdio/channelio"
)

func TestWrapTCPConn(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
		close(accepted)
	}()
	client, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()
	server, ok := <-accepted
	if !ok {
		t.Fatal("accept failed")
	}
	defer server.Close()

	wc, err := channelio.Wrap(client)
	if err != nil {
		t.Fatal(err)
	}
	if wc.RawFD() < 0 {
		t.Fatalf("fd = %d", wc.RawFD())
	}
	// net.Conn descriptors are non-blocking, so the fast path applies
	ch := channelio.New(wc.RawFD(), bridge.NewDispatcher(nil))
	cur := channelio.NewCursor(directBuf(t, 4))
	cur.Put([]byte("ping"))
	cur.Flip()
	if n, err := ch.WriteFrom(cur); n != 4 || err != nil {
		t.Fatalf("WriteFrom = %d, %v", n, err)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(server, buf); err != nil || string(buf) != "ping" {
		t.Fatalf("server read %q, %v", buf, err)
	}
}

func TestWrapWithoutDescriptor(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	if _, err := channelio.Wrap(a); err != api.ErrNoDescriptor {
		t.Errorf("Wrap(net.Pipe) = %v, want ErrNoDescriptor", err)
	}
}
