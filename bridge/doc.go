// File: bridge/doc.go
// Package bridge
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw descriptor read/write entry points for callers that manage their own
// memory. Each call takes a descriptor, a raw address and a length, issues
// exactly one read(2) or write(2), and folds the outcome into a single int32:
// a non-negative byte count or the negated platform error code.
//
// Two calling conventions are exposed for each operation. Read and Write go
// through the scheduler-aware syscall path. ReadFast and WriteFast skip the
// scheduler's enter/exit bookkeeping and are only suitable for descriptors in
// non-blocking mode, where the call cannot park the thread. Both conventions
// share one transfer routine and return identical results.
//
// The package never retains an address, never retries, never logs, and holds
// no mutable state on the transfer path.
package bridge
