// Package cache decorates the stats read side with a short TTL cache
// for the queries that scan the whole deliveries table.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
	platformcache "github.com/riskibarqy/cricket-scorecard/internal/platform/cache"
)

// StatsRepository caches leaderboard pages and cumulative run totals.
// Everything else goes straight to the inner repository: those queries
// are keyed lookups the database answers cheaply.
type StatsRepository struct {
	inner stats.Repository
	store *platformcache.Store
}

func NewStatsRepository(inner stats.Repository, store *platformcache.Store) *StatsRepository {
	return &StatsRepository{inner: inner, store: store}
}

func (r *StatsRepository) MatchEventsByPlayer(ctx context.Context, name string) ([]stats.MatchEvent, error) {
	return r.inner.MatchEventsByPlayer(ctx, name)
}

func (r *StatsRepository) WicketsByBowler(ctx context.Context, name string) ([]stats.BowlerWicket, error) {
	return r.inner.WicketsByBowler(ctx, name)
}

func (r *StatsRepository) CumulativeRunsByBatter(ctx context.Context, name string) (int64, error) {
	value, err := r.store.GetOrLoad(ctx, "stats:runs:"+name, func(ctx context.Context) (any, error) {
		return r.inner.CumulativeRunsByBatter(ctx, name)
	})
	if err != nil {
		return 0, err
	}

	return value.(int64), nil
}

func (r *StatsRepository) BatterMatchLine(ctx context.Context, name string, matchNumber int64) (stats.BatterMatchLine, error) {
	return r.inner.BatterMatchLine(ctx, name, matchNumber)
}

func (r *StatsRepository) TopBatsmen(ctx context.Context, limit, offset int) ([]stats.BatterTotal, error) {
	key := fmt.Sprintf("stats:topbatsmen:%d:%d", limit, offset)
	value, err := r.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.inner.TopBatsmen(ctx, limit, offset)
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.BatterTotal), nil
}

func (r *StatsRepository) TopWicketTakers(ctx context.Context, limit, offset int) ([]stats.BowlerTotal, error) {
	key := fmt.Sprintf("stats:topwickettakers:%d:%d", limit, offset)
	value, err := r.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.inner.TopWicketTakers(ctx, limit, offset)
	})
	if err != nil {
		return nil, err
	}

	return value.([]stats.BowlerTotal), nil
}

func (r *StatsRepository) PlayersByTeamAndMatch(ctx context.Context, teamName string, matchNumber int64) ([]player.Player, error) {
	return r.inner.PlayersByTeamAndMatch(ctx, teamName, matchNumber)
}

func (r *StatsRepository) OfficialsByMatch(ctx context.Context, matchNumber int64) ([]official.Official, error) {
	return r.inner.OfficialsByMatch(ctx, matchNumber)
}

func (r *StatsRepository) InningScoresByDate(ctx context.Context, date time.Time) ([]stats.InningScore, error) {
	return r.inner.InningScoresByDate(ctx, date)
}
