//go:build linux || darwin || freebsd || netbsd || dragonfly

// File: bridge/bridge_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Direct syscall binding. The standard convention is unix.Syscall, which
// tells the scheduler the thread may block; the fast convention is
// unix.RawSyscall, which does not.

package bridge

import "golang.org/x/sys/unix"

const fastPathSupported = true

var traps = [...]uintptr{
	opRead:  unix.SYS_READ,
	opWrite: unix.SYS_WRITE,
}

// transfer performs the single system call behind every entry point.
// The length is widened with sign extension, so a negative length reaches
// the kernel as an oversized count and comes back as its error.
func transfer(c conv, o op, fd int32, address uint64, length int32) int32 {
	var (
		n     uintptr
		errno unix.Errno
	)
	if c == convFast {
		n, _, errno = unix.RawSyscall(traps[o], uintptr(fd), uintptr(address), uintptr(length))
	} else {
		n, _, errno = unix.Syscall(traps[o], uintptr(fd), uintptr(address), uintptr(length))
	}
	return encode(n, uintptr(errno))
}
