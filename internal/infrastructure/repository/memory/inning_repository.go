package memory

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/inning"
)

type inningRepository struct {
	state *state
}

func (r *inningRepository) Create(_ context.Context, in inning.Inning) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	r.state.nextInningID++
	in.ID = r.state.nextInningID
	r.state.innings[in.ID] = in

	return in.ID, nil
}
