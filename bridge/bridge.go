// File: bridge/bridge.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bridge

// conv selects the calling convention used to enter the kernel.
type conv uint8

const (
	convStandard conv = iota
	convFast
)

// op selects the transfer direction.
type op uint8

const (
	opRead op = iota
	opWrite
)

// fastConv is the convention ReadFast and WriteFast dispatch through.
// It collapses to the standard convention on platforms without a raw path.
var fastConv = func() conv {
	if fastPathSupported {
		return convFast
	}
	return convStandard
}()

// FastPathSupported reports whether the platform provides a reduced-overhead
// calling convention. When false, ReadFast and WriteFast are aliases of Read
// and Write.
func FastPathSupported() bool {
	return fastPathSupported
}

// Read issues one read(2) on fd into the length bytes starting at address.
//
// Preconditions: fd is open; address references at least length writable
// bytes that stay valid and unmoved until Read returns. Only the first n
// bytes of the region are defined when n > 0. A zero return on a stream
// descriptor means the peer closed its end.
func Read(fd int32, address uint64, length int32) int32 {
	return transfer(convStandard, opRead, fd, address, length)
}

// Write issues one write(2) of up to length bytes starting at address to fd.
// Short writes are returned as-is.
func Write(fd int32, address uint64, length int32) int32 {
	return transfer(convStandard, opWrite, fd, address, length)
}

// ReadFast is Read through the reduced-overhead convention.
//
// The calling thread is not handed back to the scheduler while the kernel
// runs, so fd must be non-blocking.
func ReadFast(fd int32, address uint64, length int32) int32 {
	return transfer(fastConv, opRead, fd, address, length)
}

// WriteFast is Write through the reduced-overhead convention. fd must be
// non-blocking.
func WriteFast(fd int32, address uint64, length int32) int32 {
	return transfer(fastConv, opWrite, fd, address, length)
}

// Nop has the signature of the transfer entry points and does nothing. It
// measures the cost of the call boundary itself.
//
//go:noinline
func Nop(fd int32, address uint64, length int32) int32 {
	return 0
}

// encode folds a raw syscall outcome into the result convention.
func encode(n uintptr, errno uintptr) int32 {
	if errno != 0 {
		return -int32(errno)
	}
	return int32(n)
}
