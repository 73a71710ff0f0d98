package delivery

import "context"

// Repository describes delivery persistence needs from use cases.
type Repository interface {
	// CreateBatch inserts the deliveries in the given order.
	CreateBatch(ctx context.Context, deliveries []Delivery) error
}
