// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the API server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully. It returns early if the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}
