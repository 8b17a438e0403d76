//go:build openbsd || solaris || illumos || aix

// File: bridge/bridge_libc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platforms that only permit system calls through libc. The libc wrappers
// always go through the scheduler, so no fast convention exists here.

package bridge

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const fastPathSupported = false

func transfer(_ conv, o op, fd int32, address uint64, length int32) int32 {
	if length < 0 {
		return -int32(unix.EINVAL)
	}
	// address is a live region of at least length bytes, guaranteed by the caller.
	p := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), int(length))
	var (
		n   int
		err error
	)
	if o == opRead {
		n, err = unix.Read(int(fd), p)
	} else {
		n, err = unix.Write(int(fd), p)
	}
	if errno, ok := err.(unix.Errno); ok {
		return encode(0, uintptr(errno))
	}
	if err != nil {
		return -int32(unix.EIO)
	}
	return int32(n)
}
