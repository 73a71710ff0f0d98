package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// UpsertByNames inserts every name that does not exist yet in one
	// batch and returns the full set of rows, existing ones included.
	UpsertByNames(ctx context.Context, names []string) ([]Team, error)
}
