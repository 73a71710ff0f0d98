package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

type OfficialRepository struct {
	ext sqlx.ExtContext
}

func NewOfficialRepository(ext sqlx.ExtContext) *OfficialRepository {
	return &OfficialRepository{ext: ext}
}

// Upsert matches officials by name. The first role seen for a name
// wins; a later document never rewrites an existing official's role.
func (r *OfficialRepository) Upsert(ctx context.Context, officials []official.Official) ([]official.Official, error) {
	if len(officials) == 0 {
		return nil, nil
	}

	insert := qb.InsertInto("officials").Columns("name", "role")
	names := make([]string, 0, len(officials))
	for _, o := range officials {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		insert.Values(o.Name, o.Role)
		names = append(names, o.Name)
	}
	query, args, err := insert.Suffix("ON CONFLICT (name) DO NOTHING").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build insert officials query: %w", err)
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert officials: %w", err)
	}

	query, args, err = qb.Select("id", "name", "role").From("officials").
		Where(qb.In("name", anySlice(names))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select officials query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
		Role string `db:"role"`
	}
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select officials: %w", err)
	}

	out := make([]official.Official, 0, len(rows))
	for _, row := range rows {
		out = append(out, official.Official{ID: row.ID, Name: row.Name, Role: row.Role})
	}

	return out, nil
}

func (r *OfficialRepository) AddMatchOfficials(ctx context.Context, matchNumber int64, officialIDs []int64) error {
	if len(officialIDs) == 0 {
		return nil
	}

	insert := qb.InsertInto("match_officials").Columns("match_number", "official_id")
	for _, id := range officialIDs {
		insert.Values(matchNumber, id)
	}
	query, args, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match officials query: %w", err)
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match officials: %w", err)
	}

	return nil
}
