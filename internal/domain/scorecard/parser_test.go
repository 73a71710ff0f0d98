package scorecard

import (
	"errors"
	"testing"
	"time"
)

const fullDocument = `{
  "info": {
    "event": {"match_number": 5, "name": "IPL 2023"},
    "match_type": "T20",
    "city": "Mumbai",
    "venue": "Wankhede Stadium",
    "toss": {"winner": "Team A", "decision": "bat"},
    "player_of_match": ["Virender Sehwag"],
    "outcome": {"winner": "Team A", "by": {"runs": 20}},
    "dates": ["2023-04-01", "2023-04-02"],
    "players": {
      "Team A": ["Virender Sehwag", "Rahul Dravid"],
      "Team B": ["Player 3", "Player 4"]
    },
    "officials": {
      "umpire": ["Umpire 1", "Umpire 2"],
      "match_referee": ["Referee 1"]
    }
  },
  "innings": [
    {
      "team": "Team A",
      "overs": [
        {
          "over": 0,
          "deliveries": [
            {"batter": "Virender Sehwag", "bowler": "Bowler 1", "runs": {"batter": 4, "total": 4}},
            {"batter": "Virender Sehwag", "bowler": "Bowler 1", "runs": {"total": 6}},
            {"batter": "Rahul Dravid", "bowler": "Bowler 1", "runs": {"total": 0}, "wickets": [{"kind": "bowled", "player_out": "Rahul Dravid"}]}
          ]
        }
      ]
    }
  ]
}`

func TestParse_FullDocument(t *testing.T) {
	card, err := Parse([]byte(fullDocument))
	if err != nil {
		t.Fatalf("parse full document: %v", err)
	}

	if card.MatchNumber != 5 {
		t.Fatalf("expected match number 5, got %d", card.MatchNumber)
	}
	if card.EventName != "IPL 2023" || card.MatchType != "T20" {
		t.Fatalf("unexpected event fields: %q %q", card.EventName, card.MatchType)
	}
	if card.PlayerOfMatch != "Virender Sehwag" {
		t.Fatalf("expected first player_of_match entry, got %q", card.PlayerOfMatch)
	}
	if card.OutcomeWinner != "Team A" || card.OutcomeResult != "runs" {
		t.Fatalf("unexpected outcome: %q %q", card.OutcomeWinner, card.OutcomeResult)
	}

	wantDate := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	if !card.MatchDate().Equal(wantDate) {
		t.Fatalf("expected match date %v, got %v", wantDate, card.MatchDate())
	}

	if len(card.PlayersByTeam) != 2 || len(card.PlayersByTeam["Team A"]) != 2 {
		t.Fatalf("unexpected players map: %v", card.PlayersByTeam)
	}
	if len(card.OfficialsByRole["umpire"]) != 2 {
		t.Fatalf("unexpected officials map: %v", card.OfficialsByRole)
	}

	if len(card.Innings) != 1 {
		t.Fatalf("expected 1 inning, got %d", len(card.Innings))
	}
	over := card.Innings[0].Overs[0]
	if over.Number != 0 || len(over.Balls) != 3 {
		t.Fatalf("unexpected over shape: number=%d balls=%d", over.Number, len(over.Balls))
	}
	if over.Balls[1].Runs != 6 || over.Balls[1].Wicket {
		t.Fatalf("unexpected second ball: %+v", over.Balls[1])
	}
	last := over.Balls[2]
	if !last.Wicket || last.DismissalType != "bowled" {
		t.Fatalf("expected bowled wicket, got %+v", last)
	}
}

func TestParse_MissingMatchNumber(t *testing.T) {
	_, err := Parse([]byte(`{"info":{"city":"Mumbai"}}`))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse([]byte("not a document"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParse_MissingOptionalSections(t *testing.T) {
	card, err := Parse([]byte(`{"info":{"event":{"match_number":9}}}`))
	if err != nil {
		t.Fatalf("parse minimal document: %v", err)
	}

	if card.MatchNumber != 9 {
		t.Fatalf("expected match number 9, got %d", card.MatchNumber)
	}
	if len(card.Innings) != 0 || len(card.Dates) != 0 {
		t.Fatalf("expected empty optional sections, got %+v", card)
	}
	if !card.MatchDate().IsZero() {
		t.Fatalf("expected zero match date, got %v", card.MatchDate())
	}
}

func TestParse_InningsNestedUnderInfo(t *testing.T) {
	doc := `{"info":{"event":{"match_number":3},"innings":[{"team":"Team B","overs":[{"deliveries":[{"batsman":"Old Style","bowler":"B","runs":{"total":1}}]}]}]}}`

	card, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse info-nested innings: %v", err)
	}

	if len(card.Innings) != 1 || card.Innings[0].Team != "Team B" {
		t.Fatalf("expected one Team B inning, got %+v", card.Innings)
	}
	ball := card.Innings[0].Overs[0].Balls[0]
	if ball.Batter != "Old Style" {
		t.Fatalf("expected legacy batsman key to be honored, got %q", ball.Batter)
	}
}

func TestParse_InvalidDate(t *testing.T) {
	_, err := Parse([]byte(`{"info":{"event":{"match_number":4},"dates":["01-04-2023"]}}`))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument for bad date, got %v", err)
	}
}
