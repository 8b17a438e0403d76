// File: channelio/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channelio

import (
	"strconv"
	"syscall"

	"github.com/brickingsoft/errors"
)

var (
	ErrPeerClosed    = errors.Define("channelio: peer closed")
	ErrBadDescriptor = errors.Define("channelio: bad descriptor")
	ErrInterrupted   = errors.Define("channelio: interrupted")
	ErrIO            = errors.Define("channelio: i/o failure")
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "channelio"
	errMetaOpKey  = "op"
	errMetaFdKey  = "fd"

	opRead  = "read"
	opWrite = "write"
)

// IsWouldBlock reports whether a bridge result is the retryable
// "no data / no space" condition.
func IsWouldBlock(result int32) bool {
	return result < 0 && wouldBlock(syscall.Errno(-result))
}

// Decode converts a bridge result into an error. Non-negative results and
// would-block return nil.
func Decode(op string, fd int32, result int32) error {
	if result >= 0 {
		return nil
	}
	errno := syscall.Errno(-result)
	if wouldBlock(errno) {
		return nil
	}
	return errors.From(
		classify(errno),
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaFdKey, strconv.Itoa(int(fd))),
		errors.WithWrap(errno),
	)
}

// IsPeerClosed reports whether err means the remote end is gone.
func IsPeerClosed(err error) bool {
	return errors.Is(err, ErrPeerClosed)
}

// IsTransient reports whether the failed call may simply be reissued.
func IsTransient(err error) bool {
	return errors.Is(err, ErrInterrupted)
}
