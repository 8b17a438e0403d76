//go:build !windows

// File: channelio/errno_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func wouldBlock(errno syscall.Errno) bool {
	return errno == unix.EAGAIN || errno == unix.EWOULDBLOCK
}

func classify(errno syscall.Errno) error {
	switch errno {
	case unix.EPIPE, unix.ECONNRESET, unix.ENOTCONN, unix.ECONNABORTED, unix.ESHUTDOWN:
		return ErrPeerClosed
	case unix.EBADF:
		return ErrBadDescriptor
	case unix.EINTR:
		return ErrInterrupted
	default:
		return ErrIO
	}
}
