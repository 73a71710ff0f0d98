package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	Exists(ctx context.Context, number int64) (bool, error)
	// Create inserts the match and reports whether a row was actually
	// written. A false result means the match number was already taken,
	// which callers treat as a duplicate rather than an error.
	Create(ctx context.Context, m Match) (bool, error)
}
