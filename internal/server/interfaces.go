package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// Run serves requests until ctx is canceled or a termination signal
	// arrives, then shuts down gracefully. It returns nil on a clean stop.
	Run(ctx context.Context) error
}
