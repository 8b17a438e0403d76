// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides readiness notification for descriptors driven
// through the bridge: epoll on Linux, a not-supported stub elsewhere.
// Callers wait here before issuing fast-path transfers on non-blocking
// descriptors.
package reactor
