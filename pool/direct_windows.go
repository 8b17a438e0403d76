//go:build windows

// File: pool/direct_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// VirtualAlloc-backed direct buffers.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapRegion(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func unmapRegion(region []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(&region[0])), 0, windows.MEM_RELEASE)
}
