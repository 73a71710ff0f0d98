package memory

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
)

type officialRepository struct {
	state *state
}

func (r *officialRepository) Upsert(_ context.Context, officials []official.Official) ([]official.Official, error) {
	out := make([]official.Official, 0, len(officials))
	for _, o := range officials {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		existing, ok := r.state.officials[o.Name]
		if !ok {
			r.state.nextOfficialID++
			existing = official.Official{ID: r.state.nextOfficialID, Name: o.Name, Role: o.Role}
			r.state.officials[o.Name] = existing
		}
		out = append(out, existing)
	}

	return out, nil
}

func (r *officialRepository) AddMatchOfficials(_ context.Context, matchNumber int64, officialIDs []int64) error {
	r.state.matchOfficials[matchNumber] = append(r.state.matchOfficials[matchNumber], officialIDs...)
	return nil
}
