// Package delivery defines the contract every transport-level server
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a serving surface, such as the HTTP API.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
