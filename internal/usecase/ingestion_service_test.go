package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-scorecard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-scorecard/internal/platform/logging"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

const sampleDocument = `{
	"info": {
		"event": {"match_number": 5, "name": "Test Series"},
		"match_type": "ODI",
		"city": "Delhi",
		"venue": "Feroz Shah Kotla",
		"dates": ["2008-04-19"],
		"toss": {"winner": "India", "decision": "bat"},
		"player_of_match": ["V Sehwag"],
		"outcome": {"winner": "India", "by": {"runs": 12}},
		"players": {
			"India": ["V Sehwag", "R Dravid", "V Sehwag"],
			"Australia": ["RT Ponting", "AC Gilchrist"]
		},
		"officials": {
			"umpire": ["Aleem Dar", "SJ Davis"],
			"referee": ["RS Madugalle"]
		}
	},
	"innings": [
		{
			"team": "India",
			"overs": [
				{
					"over": 0,
					"deliveries": [
						{"batter": "V Sehwag", "bowler": "B Lee", "runs": {"total": 6}},
						{"batter": "V Sehwag", "bowler": "B Lee", "runs": {"total": 4}},
						{"batter": "R Dravid", "bowler": "B Lee", "runs": {"total": 1}}
					]
				},
				{
					"over": 1,
					"deliveries": [
						{"batter": "V Sehwag", "bowler": "MG Johnson", "runs": {"total": 2},
							"wickets": [{"kind": "bowled", "player_out": "V Sehwag"}]}
					]
				}
			]
		},
		{
			"team": "Australia",
			"overs": [
				{
					"over": 0,
					"deliveries": [
						{"batter": "RT Ponting", "bowler": "Z Khan", "runs": {"total": 1}}
					]
				}
			]
		}
	]
}`

func newIngestionFixture() (*memory.Store, *usecase.IngestionService, *usecase.StatsService) {
	store := memory.NewStore()
	ingest := usecase.NewIngestionService(store, logging.NewNop())
	stats := usecase.NewStatsService(store)

	return store, ingest, stats
}

func TestIngestionService_Ingest(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	created, err := ingest.Ingest(ctx, []byte(sampleDocument))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if !created {
		t.Fatal("expected first ingestion to create the match")
	}

	scores, err := stats.InningScoresByDate(ctx, "2008-04-19")
	if err != nil {
		t.Fatalf("inning scores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 innings, got %d", len(scores))
	}
	if scores[0].BattingTeam != "India" || scores[0].TotalScore != 13 {
		t.Fatalf("unexpected first inning: %+v", scores[0])
	}
	if scores[1].BattingTeam != "Australia" || scores[1].TotalScore != 1 {
		t.Fatalf("unexpected second inning: %+v", scores[1])
	}
}

func TestIngestionService_Ingest_Duplicate(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("first ingest: %v", err)
	}

	created, err := ingest.Ingest(ctx, []byte(sampleDocument))
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if created {
		t.Fatal("expected duplicate ingestion to be a no-op")
	}

	runs, err := stats.CumulativeRunsByBatter(ctx, "V Sehwag")
	if err != nil {
		t.Fatalf("cumulative runs: %v", err)
	}
	if runs != 12 {
		t.Fatalf("expected duplicate to add no runs, got %d", runs)
	}
}

func TestIngestionService_Ingest_RosterDeduplicated(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	players, err := stats.PlayersByTeamAndMatch(ctx, "India", 5)
	if err != nil {
		t.Fatalf("players by team: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected repeated roster name collapsed to 2 players, got %d", len(players))
	}
	if players[0].Name != "R Dravid" || players[1].Name != "V Sehwag" {
		t.Fatalf("unexpected roster order: %+v", players)
	}
}

func TestIngestionService_Ingest_Officials(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	officials, err := stats.OfficialsByMatch(ctx, 5)
	if err != nil {
		t.Fatalf("officials by match: %v", err)
	}
	if len(officials) != 3 {
		t.Fatalf("expected 3 officials, got %d", len(officials))
	}
	if officials[0].Name != "Aleem Dar" || officials[0].Role != "umpire" {
		t.Fatalf("unexpected first official: %+v", officials[0])
	}
	if officials[1].Name != "RS Madugalle" || officials[1].Role != "referee" {
		t.Fatalf("unexpected second official: %+v", officials[1])
	}
}

func TestIngestionService_Ingest_MissingInnings(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	doc := `{"info": {"event": {"match_number": 9}, "dates": ["2010-01-02"]}}`
	created, err := ingest.Ingest(ctx, []byte(doc))
	if err != nil {
		t.Fatalf("ingest without innings: %v", err)
	}
	if !created {
		t.Fatal("expected match without innings to be created")
	}

	scores, err := stats.InningScoresByDate(ctx, "2010-01-02")
	if err != nil {
		t.Fatalf("inning scores: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected no innings, got %d", len(scores))
	}
}

func TestIngestionService_Ingest_Malformed(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	cases := []string{
		`not json`,
		`{"info": {"event": {"name": "no number"}}}`,
		`{"info": {"event": {"match_number": 3}, "dates": ["19-04-2008"]}}`,
	}
	for _, raw := range cases {
		if _, err := ingest.Ingest(ctx, []byte(raw)); !errors.Is(err, scorecard.ErrMalformedDocument) {
			t.Fatalf("expected malformed document error for %q, got %v", raw, err)
		}
	}

	events, err := stats.MatchesByPlayer(ctx, "V Sehwag")
	if err != nil {
		t.Fatalf("matches by player: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no persisted matches, got %d", len(events))
	}
}

func TestIngestionService_Ingest_PlayerOfMatchVisible(t *testing.T) {
	_, ingest, stats := newIngestionFixture()
	ctx := context.Background()

	if _, err := ingest.Ingest(ctx, []byte(sampleDocument)); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	events, err := stats.MatchesByPlayer(ctx, "V Sehwag")
	if err != nil {
		t.Fatalf("matches by player: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 match, got %d", len(events))
	}
	event := events[0]
	if event.MatchNumber != 5 || event.Winner != "India" || event.PlayerOfMatch != "V Sehwag" {
		t.Fatalf("unexpected match event: %+v", event)
	}
	if event.MatchDate.Format("2006-01-02") != "2008-04-19" {
		t.Fatalf("unexpected match date: %v", event.MatchDate)
	}
}
