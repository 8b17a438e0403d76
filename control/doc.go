// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for hioload-fdio.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads, typed lookups and TOML seeding
//   - Reload listeners that let the bridge switch calling conventions live
//   - Counters published by channels
//   - Probe registration and state dumps
package control
