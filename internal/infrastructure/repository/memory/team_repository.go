package memory

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/team"
)

type teamRepository struct {
	state *state
}

func (r *teamRepository) UpsertByNames(_ context.Context, names []string) ([]team.Team, error) {
	out := make([]team.Team, 0, len(names))
	for _, name := range names {
		existing, ok := r.state.teams[name]
		if !ok {
			r.state.nextTeamID++
			existing = team.Team{ID: r.state.nextTeamID, Name: name}
			r.state.teams[name] = existing
		}
		out = append(out, existing)
	}

	return out, nil
}
