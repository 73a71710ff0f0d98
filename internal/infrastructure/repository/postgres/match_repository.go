package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/match"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

type MatchRepository struct {
	ext sqlx.ExtContext
}

func NewMatchRepository(ext sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{ext: ext}
}

func (r *MatchRepository) Exists(ctx context.Context, number int64) (bool, error) {
	query, args, err := qb.Select("1").From("matches").
		Where(qb.Eq("match_number", number)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build match exists query: %w", err)
	}

	var one int
	if err := sqlx.GetContext(ctx, r.ext, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check match exists: %w", err)
	}

	return true, nil
}

// Create relies on the match_number primary key: the conflict-guarded
// insert is the serialization point for concurrent ingestions of the
// same document.
func (r *MatchRepository) Create(ctx context.Context, m match.Match) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}

	query, args, err := qb.InsertModel("matches", matchTableModel{
		Number:        m.Number,
		Type:          m.Type,
		City:          m.City,
		Venue:         m.Venue,
		EventName:     m.EventName,
		TossWinner:    m.TossWinner,
		TossDecision:  m.TossDecision,
		PlayerOfMatch: m.PlayerOfMatch,
		Date:          m.Date,
	}, "ON CONFLICT (match_number) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert match query: %w", err)
	}

	result, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert match rows affected: %w", err)
	}

	return affected > 0, nil
}
