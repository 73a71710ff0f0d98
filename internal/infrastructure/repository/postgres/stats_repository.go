package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

const matchEventsByPlayerQuery = `
SELECT m.match_number, m.match_type, m.city, m.venue, m.event_name,
       COALESCE(o.winner, '') AS winner,
       m.toss_winner, m.toss_decision, m.player_of_match, m.match_date
FROM matches m
LEFT JOIN outcomes o ON o.match_number = m.match_number
WHERE m.player_of_match = $1
   OR EXISTS (
        SELECT 1
        FROM match_rosters r
        JOIN players p ON p.id = r.player_id
        WHERE r.match_number = m.match_number AND p.name = $1
   )
ORDER BY m.match_number`

const wicketsByBowlerQuery = `
SELECT d.id, d.over_number, d.ball_number, d.wicket, d.batter, d.bowler, d.dismissal_type
FROM deliveries d
WHERE d.bowler = $1 AND d.wicket
ORDER BY d.id`

const cumulativeRunsQuery = `
SELECT COALESCE(SUM(runs), 0)
FROM deliveries
WHERE batter = $1`

const batterMatchLineQuery = `
SELECT COALESCE(SUM(d.runs), 0) AS runs, COUNT(*) AS balls
FROM deliveries d
JOIN innings i ON i.id = d.inning_id
WHERE d.batter = $1 AND i.match_number = $2`

// StatsRepository is the read side. It runs outside the ingestion
// transaction, always against committed rows.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) MatchEventsByPlayer(ctx context.Context, name string) ([]stats.MatchEvent, error) {
	var rows []struct {
		MatchNumber   int64     `db:"match_number"`
		MatchType     string    `db:"match_type"`
		City          string    `db:"city"`
		Venue         string    `db:"venue"`
		EventName     string    `db:"event_name"`
		Winner        string    `db:"winner"`
		TossWinner    string    `db:"toss_winner"`
		TossDecision  string    `db:"toss_decision"`
		PlayerOfMatch string    `db:"player_of_match"`
		MatchDate     time.Time `db:"match_date"`
	}
	if err := r.db.SelectContext(ctx, &rows, matchEventsByPlayerQuery, name); err != nil {
		return nil, fmt.Errorf("select match events by player: %w", err)
	}

	out := make([]stats.MatchEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.MatchEvent{
			MatchNumber:   row.MatchNumber,
			MatchType:     row.MatchType,
			City:          row.City,
			Venue:         row.Venue,
			EventName:     row.EventName,
			Winner:        row.Winner,
			TossWinner:    row.TossWinner,
			TossDecision:  row.TossDecision,
			PlayerOfMatch: row.PlayerOfMatch,
			MatchDate:     row.MatchDate,
		})
	}

	return out, nil
}

func (r *StatsRepository) WicketsByBowler(ctx context.Context, name string) ([]stats.BowlerWicket, error) {
	var rows []struct {
		ID            int64  `db:"id"`
		Over          int    `db:"over_number"`
		Ball          int    `db:"ball_number"`
		Wicket        bool   `db:"wicket"`
		Batter        string `db:"batter"`
		Bowler        string `db:"bowler"`
		DismissalType string `db:"dismissal_type"`
	}
	if err := r.db.SelectContext(ctx, &rows, wicketsByBowlerQuery, name); err != nil {
		return nil, fmt.Errorf("select wickets by bowler: %w", err)
	}

	out := make([]stats.BowlerWicket, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.BowlerWicket{
			DeliveryID:    row.ID,
			Over:          row.Over,
			Ball:          row.Ball,
			Wicket:        row.Wicket,
			Batsman:       row.Batter,
			Bowler:        row.Bowler,
			DismissalType: row.DismissalType,
		})
	}

	return out, nil
}

func (r *StatsRepository) CumulativeRunsByBatter(ctx context.Context, name string) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, cumulativeRunsQuery, name); err != nil {
		return 0, fmt.Errorf("select cumulative runs: %w", err)
	}

	return total, nil
}

func (r *StatsRepository) BatterMatchLine(ctx context.Context, name string, matchNumber int64) (stats.BatterMatchLine, error) {
	var row struct {
		Runs  int64 `db:"runs"`
		Balls int64 `db:"balls"`
	}
	if err := r.db.GetContext(ctx, &row, batterMatchLineQuery, name, matchNumber); err != nil {
		return stats.BatterMatchLine{}, fmt.Errorf("select batter match line: %w", err)
	}

	return stats.BatterMatchLine{Runs: row.Runs, Balls: row.Balls}, nil
}

func (r *StatsRepository) TopBatsmen(ctx context.Context, limit, offset int) ([]stats.BatterTotal, error) {
	query, args, err := qb.Select("batter AS name", "SUM(runs) AS runs").
		From("deliveries").
		GroupBy("batter").
		OrderBy("SUM(runs) DESC", "batter ASC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top batsmen query: %w", err)
	}

	var rows []struct {
		Name string `db:"name"`
		Runs int64  `db:"runs"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top batsmen: %w", err)
	}

	out := make([]stats.BatterTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.BatterTotal{Name: row.Name, Runs: row.Runs})
	}

	return out, nil
}

func (r *StatsRepository) TopWicketTakers(ctx context.Context, limit, offset int) ([]stats.BowlerTotal, error) {
	query, args, err := qb.Select("bowler AS name", "COUNT(*) AS wickets").
		From("deliveries").
		Where(qb.Expr("wicket")).
		GroupBy("bowler").
		OrderBy("COUNT(*) DESC", "bowler ASC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top wicket takers query: %w", err)
	}

	var rows []struct {
		Name    string `db:"name"`
		Wickets int64  `db:"wickets"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top wicket takers: %w", err)
	}

	out := make([]stats.BowlerTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.BowlerTotal{Name: row.Name, Wickets: row.Wickets})
	}

	return out, nil
}

func (r *StatsRepository) PlayersByTeamAndMatch(ctx context.Context, teamName string, matchNumber int64) ([]player.Player, error) {
	query, args, err := qb.Select("p.id", "p.name").
		From("players p").
		Join("match_rosters r ON r.player_id = p.id").
		Join("teams t ON t.id = r.team_id").
		Where(
			qb.Eq("t.name", teamName),
			qb.Eq("r.match_number", matchNumber),
		).
		OrderBy("p.name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build players by team query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func (r *StatsRepository) OfficialsByMatch(ctx context.Context, matchNumber int64) ([]official.Official, error) {
	query, args, err := qb.Select("o.id", "o.name", "o.role").
		From("officials o").
		Join("match_officials mo ON mo.official_id = o.id").
		Where(qb.Eq("mo.match_number", matchNumber)).
		OrderBy("o.name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build officials by match query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
		Role string `db:"role"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select officials by match: %w", err)
	}

	out := make([]official.Official, 0, len(rows))
	for _, row := range rows {
		out = append(out, official.Official{ID: row.ID, Name: row.Name, Role: row.Role})
	}

	return out, nil
}

func (r *StatsRepository) InningScoresByDate(ctx context.Context, date time.Time) ([]stats.InningScore, error) {
	query, args, err := qb.Select("i.match_number", "i.id", "i.batting_team", "i.total_score").
		From("innings i").
		Join("matches m ON m.match_number = i.match_number").
		Where(qb.Eq("m.match_date", date.Format("2006-01-02"))).
		OrderBy("i.match_number", "i.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build inning scores query: %w", err)
	}

	var rows []struct {
		MatchNumber int64  `db:"match_number"`
		ID          int64  `db:"id"`
		BattingTeam string `db:"batting_team"`
		TotalScore  int    `db:"total_score"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select inning scores: %w", err)
	}

	out := make([]stats.InningScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.InningScore{
			MatchNumber: row.MatchNumber,
			InningID:    row.ID,
			BattingTeam: row.BattingTeam,
			TotalScore:  row.TotalScore,
		})
	}

	return out, nil
}
