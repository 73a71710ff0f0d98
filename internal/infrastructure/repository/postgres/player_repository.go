package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

type PlayerRepository struct {
	ext sqlx.ExtContext
}

func NewPlayerRepository(ext sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{ext: ext}
}

func (r *PlayerRepository) UpsertByNames(ctx context.Context, names []string) ([]player.Player, error) {
	if len(names) == 0 {
		return nil, nil
	}

	insert := qb.InsertInto("players").Columns("name")
	for _, name := range names {
		insert.Values(name)
	}
	query, args, err := insert.Suffix("ON CONFLICT (name) DO NOTHING").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build insert players query: %w", err)
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert players: %w", err)
	}

	query, args, err = qb.Select("id", "name").From("players").
		Where(qb.In("name", anySlice(names))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func (r *PlayerRepository) AddMatchRoster(ctx context.Context, entries []player.RosterEntry) error {
	if len(entries) == 0 {
		return nil
	}

	insert := qb.InsertInto("match_rosters").Columns("match_number", "team_id", "player_id")
	for _, entry := range entries {
		insert.Values(entry.MatchNumber, entry.TeamID, entry.PlayerID)
	}
	query, args, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert roster query: %w", err)
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert roster: %w", err)
	}

	return nil
}
