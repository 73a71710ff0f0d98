package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

func TestStatsService_StrikeRate(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	rate, err := stats.StrikeRateByBatterAndMatch(ctx, "V Sehwag", 5)
	if err != nil {
		t.Fatalf("strike rate: %v", err)
	}
	if rate != "400.00" {
		t.Fatalf("expected 400.00, got %q", rate)
	}

	rate, err = stats.StrikeRateByBatterAndMatch(ctx, "AC Gilchrist", 5)
	if err != nil {
		t.Fatalf("strike rate for batter without deliveries: %v", err)
	}
	if rate != usecase.NoStatsData {
		t.Fatalf("expected %q, got %q", usecase.NoStatsData, rate)
	}
}

func TestStatsService_CumulativeRuns(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	runs, err := stats.CumulativeRunsByBatter(ctx, "V Sehwag")
	if err != nil {
		t.Fatalf("cumulative runs: %v", err)
	}
	if runs != 12 {
		t.Fatalf("expected 12 runs, got %d", runs)
	}

	runs, err = stats.CumulativeRunsByBatter(ctx, "Unknown Batter")
	if err != nil {
		t.Fatalf("cumulative runs for unknown batter: %v", err)
	}
	if runs != 0 {
		t.Fatalf("expected 0 runs for unknown batter, got %d", runs)
	}
}

func TestStatsService_WicketsByBowler(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	wickets, err := stats.WicketsByBowler(ctx, "MG Johnson")
	if err != nil {
		t.Fatalf("wickets by bowler: %v", err)
	}
	if len(wickets) != 1 {
		t.Fatalf("expected 1 wicket, got %d", len(wickets))
	}
	w := wickets[0]
	if w.Batsman != "V Sehwag" || w.DismissalType != "bowled" || !w.Wicket {
		t.Fatalf("unexpected wicket row: %+v", w)
	}

	none, err := stats.WicketsByBowler(ctx, "B Lee")
	if err != nil {
		t.Fatalf("wickets for wicketless bowler: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no wickets for B Lee, got %d", len(none))
	}
}

func TestStatsService_Leaderboards(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	batters, err := stats.TopBatsmen(ctx, 0, 10)
	if err != nil {
		t.Fatalf("top batsmen: %v", err)
	}
	if len(batters) != 3 {
		t.Fatalf("expected 3 batters, got %d", len(batters))
	}
	if batters[0].Name != "V Sehwag" || batters[0].Runs != 12 {
		t.Fatalf("unexpected leader: %+v", batters[0])
	}
	// R Dravid and RT Ponting tie on 1 run; names break the tie.
	if batters[1].Name != "R Dravid" || batters[2].Name != "RT Ponting" {
		t.Fatalf("unexpected tie break order: %+v", batters[1:])
	}

	bowlers, err := stats.TopWicketTakers(ctx, 0, 10)
	if err != nil {
		t.Fatalf("top wicket takers: %v", err)
	}
	if len(bowlers) != 1 || bowlers[0].Name != "MG Johnson" || bowlers[0].Wickets != 1 {
		t.Fatalf("unexpected wicket takers: %+v", bowlers)
	}
}

func TestStatsService_LeaderboardPagination(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	first, err := stats.TopBatsmen(ctx, 0, 2)
	if err != nil {
		t.Fatalf("page 0: %v", err)
	}
	second, err := stats.TopBatsmen(ctx, 1, 2)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(first) != 2 || len(second) != 1 {
		t.Fatalf("unexpected page sizes: %d and %d", len(first), len(second))
	}
	for _, row := range second {
		for _, prev := range first {
			if row.Name == prev.Name {
				t.Fatalf("player %s appears on both pages", row.Name)
			}
		}
	}

	empty, err := stats.TopBatsmen(ctx, 5, 2)
	if err != nil {
		t.Fatalf("page beyond data: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(empty))
	}
}

func TestStatsService_InvalidInput(t *testing.T) {
	_, _, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := stats.CumulativeRunsByBatter(ctx, "  "); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}
	if _, err := stats.StrikeRateByBatterAndMatch(ctx, "V Sehwag", 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for match number 0, got %v", err)
	}
	if _, err := stats.TopBatsmen(ctx, -1, 10); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative page, got %v", err)
	}
	if _, err := stats.TopWicketTakers(ctx, 0, 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero size, got %v", err)
	}
	if _, err := stats.InningScoresByDate(ctx, "19-04-2008"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad date, got %v", err)
	}
	if _, err := stats.PlayersByTeamAndMatch(ctx, "", 5); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank team, got %v", err)
	}
	if _, err := stats.OfficialsByMatch(ctx, -2); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative match number, got %v", err)
	}
}
