// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// Run starts serving requests and blocks until ctx is cancelled, a
	// SIGINT/SIGTERM/SIGQUIT is received or the listener fails.
	Run(ctx context.Context) error
}
