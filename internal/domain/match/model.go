package match

import (
	"fmt"
	"time"
)

// Match is one recorded scorecard, identified by its match number.
// A match is created once on ingestion and never mutated afterwards.
type Match struct {
	Number        int64
	Type          string
	City          string
	Venue         string
	EventName     string
	TossWinner    string
	TossDecision  string
	PlayerOfMatch string
	Date          time.Time
}

func (m Match) Validate() error {
	if m.Number <= 0 {
		return fmt.Errorf("match number is required")
	}

	return nil
}
