//go:build windows

// File: channelio/errno_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func wouldBlock(errno syscall.Errno) bool {
	return errno == windows.WSAEWOULDBLOCK || errno == windows.ERROR_IO_PENDING
}

func classify(errno syscall.Errno) error {
	switch errno {
	case windows.ERROR_BROKEN_PIPE, windows.ERROR_NO_DATA, windows.WSAECONNRESET, windows.WSAECONNABORTED:
		return ErrPeerClosed
	case windows.ERROR_INVALID_HANDLE:
		return ErrBadDescriptor
	case windows.ERROR_OPERATION_ABORTED:
		return ErrInterrupted
	default:
		return ErrIO
	}
}
