package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/inning"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

type InningRepository struct {
	ext sqlx.ExtContext
}

func NewInningRepository(ext sqlx.ExtContext) *InningRepository {
	return &InningRepository{ext: ext}
}

func (r *InningRepository) Create(ctx context.Context, in inning.Inning) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	query, args, err := qb.InsertInto("innings").
		Columns("match_number", "seq", "batting_team", "total_score").
		Values(in.MatchNumber, in.Seq, in.BattingTeam, in.TotalScore).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert inning query: %w", err)
	}

	var id int64
	if err := r.ext.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert inning: %w", err)
	}

	return id, nil
}
