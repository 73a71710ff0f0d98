package official

import "context"

// Repository describes official persistence needs from use cases.
type Repository interface {
	// Upsert inserts missing officials (matched by name) in one batch
	// and returns the full set of rows, existing ones included.
	Upsert(ctx context.Context, officials []Official) ([]Official, error)
	// AddMatchOfficials links the officials to the given match.
	AddMatchOfficials(ctx context.Context, matchNumber int64, officialIDs []int64) error
}
