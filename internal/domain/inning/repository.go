package inning

import "context"

// Repository describes inning persistence needs from use cases.
type Repository interface {
	// Create inserts the inning and returns its generated ID.
	Create(ctx context.Context, in Inning) (int64, error)
}
