// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
