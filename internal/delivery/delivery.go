// Package delivery defines the contract served entrypoints implement.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the runner.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
