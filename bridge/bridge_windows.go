//go:build windows

// File: bridge/bridge_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows binding over ReadFile/WriteFile. The descriptor is a HANDLE value
// opened for synchronous I/O. There is no raw convention on Windows.

package bridge

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const fastPathSupported = false

func transfer(_ conv, o op, fd int32, address uint64, length int32) int32 {
	if length < 0 {
		return -int32(windows.ERROR_INVALID_PARAMETER)
	}
	h := windows.Handle(uintptr(fd))
	// address is a live region of at least length bytes, guaranteed by the caller.
	p := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(address))), int(length))
	var done uint32
	var err error
	if o == opRead {
		err = windows.ReadFile(h, p, &done, nil)
		// A closed pipe writer is end of stream, as os.File reports it.
		if err == windows.ERROR_BROKEN_PIPE {
			return 0
		}
	} else {
		err = windows.WriteFile(h, p, &done, nil)
	}
	if errno, ok := err.(windows.Errno); ok {
		return encode(0, uintptr(errno))
	}
	return int32(done)
}
