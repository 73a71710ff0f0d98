package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/outcome"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

type OutcomeRepository struct {
	ext sqlx.ExtContext
}

func NewOutcomeRepository(ext sqlx.ExtContext) *OutcomeRepository {
	return &OutcomeRepository{ext: ext}
}

func (r *OutcomeRepository) Create(ctx context.Context, o outcome.Outcome) error {
	if err := o.Validate(); err != nil {
		return err
	}

	query, args, err := qb.InsertInto("outcomes").
		Columns("match_number", "winner", "result").
		Values(o.MatchNumber, o.Winner, o.Result).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert outcome query: %w", err)
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}

	return nil
}
