package memory

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
)

type playerRepository struct {
	state *state
}

func (r *playerRepository) UpsertByNames(_ context.Context, names []string) ([]player.Player, error) {
	out := make([]player.Player, 0, len(names))
	for _, name := range names {
		existing, ok := r.state.players[name]
		if !ok {
			r.state.nextPlayerID++
			existing = player.Player{ID: r.state.nextPlayerID, Name: name}
			r.state.players[name] = existing
		}
		out = append(out, existing)
	}

	return out, nil
}

func (r *playerRepository) AddMatchRoster(_ context.Context, entries []player.RosterEntry) error {
	r.state.rosters = append(r.state.rosters, entries...)
	return nil
}
