// Package delivery defines the contract every transport entry point
// (HTTP server, workers) fulfills so main can run them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the server stops or the context is canceled.
	Serve(ctx context.Context) error
}
