package player

import "fmt"

// Player is an athlete appearing on a scorecard. Identity is name-based;
// team affiliation is scoped to a match via RosterEntry, not stored on
// the player itself.
type Player struct {
	ID   int64
	Name string
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

// RosterEntry links a player to the team they played for in one match.
type RosterEntry struct {
	MatchNumber int64
	TeamID      int64
	PlayerID    int64
}
