package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// UpsertByNames inserts missing names in one batch and returns the
	// full set of rows, existing ones included.
	UpsertByNames(ctx context.Context, names []string) ([]Player, error)
	// AddMatchRoster records match-scoped team membership for the batch.
	AddMatchRoster(ctx context.Context, entries []RosterEntry) error
}
