package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/team"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

type TeamRepository struct {
	ext sqlx.ExtContext
}

func NewTeamRepository(ext sqlx.ExtContext) *TeamRepository {
	return &TeamRepository{ext: ext}
}

func (r *TeamRepository) UpsertByNames(ctx context.Context, names []string) ([]team.Team, error) {
	if len(names) == 0 {
		return nil, nil
	}

	insert := qb.InsertInto("teams").Columns("name")
	for _, name := range names {
		insert.Values(name)
	}
	query, args, err := insert.Suffix("ON CONFLICT (name) DO NOTHING").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build insert teams query: %w", err)
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert teams: %w", err)
	}

	query, args, err = qb.Select("id", "name").From("teams").
		Where(qb.In("name", anySlice(names))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func anySlice(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
