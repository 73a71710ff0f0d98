package scorecard

import "time"

// Scorecard is the validated intermediate form of one match document.
// Only the match number is mandatory; every other section degrades to
// its zero value when absent from the document.
type Scorecard struct {
	MatchNumber     int64
	MatchType       string
	City            string
	Venue           string
	EventName       string
	TossWinner      string
	TossDecision    string
	PlayerOfMatch   string
	OutcomeWinner   string
	OutcomeResult   string
	Dates           []time.Time
	PlayersByTeam   map[string][]string
	OfficialsByRole map[string][]string
	Innings         []Inning
}

// MatchDate is the first listed date, the one persisted on the match row.
func (s Scorecard) MatchDate() time.Time {
	if len(s.Dates) == 0 {
		return time.Time{}
	}
	return s.Dates[0]
}

// Inning is one batting turn as transcribed from the document.
type Inning struct {
	Team  string
	Overs []Over
}

// Over is one group of consecutive deliveries.
type Over struct {
	Number int
	Balls  []Ball
}

// Ball is one delivery event, kept exactly as the document gave it.
type Ball struct {
	Batter        string
	Bowler        string
	Runs          int
	Wicket        bool
	DismissalType string
}
