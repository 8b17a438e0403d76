// File: channelio/fd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"net"
	"syscall"

	"github.com/brickingsoft/errors"
	"github.com/momentics/hioload-fdio/api"
)

// FD returns the descriptor behind a Go connection such as *net.TCPConn or
// *os.File. The connection keeps ownership; the value is only valid while
// the connection is open and reachable.
func FD(conn syscall.Conn) (int32, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return -1, errors.New(
			"descriptor lookup failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithWrap(err),
		)
	}
	fd := int32(-1)
	if err = raw.Control(func(s uintptr) { fd = int32(s) }); err != nil {
		return -1, errors.New(
			"descriptor lookup failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithWrap(err),
		)
	}
	return fd, nil
}

// Conn pins a net.Conn together with its descriptor so the connection is
// not collected, and finalized, while the descriptor is in use.
type Conn struct {
	net.Conn
	fd int32
}

var _ api.FDConn = (*Conn)(nil)

// Wrap extracts the descriptor of c. c must implement syscall.Conn.
func Wrap(c net.Conn) (*Conn, error) {
	sc, ok := c.(syscall.Conn)
	if !ok {
		return nil, api.ErrNoDescriptor
	}
	fd, err := FD(sc)
	if err != nil {
		return nil, err
	}
	return &Conn{Conn: c, fd: fd}, nil
}

// RawFD returns the wrapped descriptor.
func (c *Conn) RawFD() int32 { return c.fd }
