package stats

import "time"

// MatchEvent is one match a player appeared in, either on a roster or
// as player of the match.
type MatchEvent struct {
	MatchNumber   int64
	MatchType     string
	City          string
	Venue         string
	EventName     string
	Winner        string
	TossWinner    string
	TossDecision  string
	PlayerOfMatch string
	MatchDate     time.Time
}

// BowlerWicket is one wicket-taking delivery by a bowler.
type BowlerWicket struct {
	DeliveryID    int64
	Over          int
	Ball          int
	Wicket        bool
	Batsman       string
	Bowler        string
	DismissalType string
}

// BatterTotal is a leaderboard row aggregated by total runs.
type BatterTotal struct {
	Name string
	Runs int64
}

// BowlerTotal is a leaderboard row aggregated by wickets taken.
type BowlerTotal struct {
	Name    string
	Wickets int64
}

// BatterMatchLine is a batter's aggregate within one match, the input
// to a strike-rate computation.
type BatterMatchLine struct {
	Runs  int64
	Balls int64
}

// InningScore is one inning's final total on a given match date.
type InningScore struct {
	MatchNumber int64
	InningID    int64
	BattingTeam string
	TotalScore  int
}
