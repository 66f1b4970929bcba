// Package delivery holds the transports that expose the matching engine.
package delivery

import "context"

// Delivery is a long-running server started by an fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
