package memory

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/outcome"
)

type outcomeRepository struct {
	state *state
}

func (r *outcomeRepository) Create(_ context.Context, o outcome.Outcome) error {
	if err := o.Validate(); err != nil {
		return err
	}
	r.state.outcomes[o.MatchNumber] = o

	return nil
}
