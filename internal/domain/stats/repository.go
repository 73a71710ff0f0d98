package stats

import (
	"context"
	"time"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
)

// Repository is the read side over normalized scorecard data. Every
// operation is a deterministic query against committed rows; absence of
// data is an empty result, never an error.
type Repository interface {
	MatchEventsByPlayer(ctx context.Context, name string) ([]MatchEvent, error)
	WicketsByBowler(ctx context.Context, name string) ([]BowlerWicket, error)
	CumulativeRunsByBatter(ctx context.Context, name string) (int64, error)
	BatterMatchLine(ctx context.Context, name string, matchNumber int64) (BatterMatchLine, error)
	TopBatsmen(ctx context.Context, limit, offset int) ([]BatterTotal, error)
	TopWicketTakers(ctx context.Context, limit, offset int) ([]BowlerTotal, error)
	PlayersByTeamAndMatch(ctx context.Context, teamName string, matchNumber int64) ([]player.Player, error)
	OfficialsByMatch(ctx context.Context, matchNumber int64) ([]official.Official, error)
	InningScoresByDate(ctx context.Context, date time.Time) ([]InningScore, error)
}
