package memory

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/match"
)

type matchRepository struct {
	state *state
}

func (r *matchRepository) Exists(_ context.Context, number int64) (bool, error) {
	_, ok := r.state.matches[number]
	return ok, nil
}

func (r *matchRepository) Create(_ context.Context, m match.Match) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if _, ok := r.state.matches[m.Number]; ok {
		return false, nil
	}
	r.state.matches[m.Number] = m

	return true, nil
}
