// Package pool
// Author: momentics <momentics@gmail.com>
//
// Direct memory layer for hioload-fdio.
// Regions are mapped outside the Go heap, so their addresses stay fixed and
// may be handed to the descriptor bridge without pinning. Regions are
// recycled per power-of-two size class and unmapped on overflow or Close.
// Platform allocators live in direct_unix.go and direct_windows.go.
package pool
