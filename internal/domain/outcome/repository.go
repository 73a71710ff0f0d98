package outcome

import "context"

// Repository describes outcome persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, o Outcome) error
}
