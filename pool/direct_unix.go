//go:build !windows

// File: pool/direct_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous private mappings for direct buffers.

package pool

import "golang.org/x/sys/unix"

func mapRegion(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapRegion(region []byte) error {
	return unix.Munmap(region)
}
