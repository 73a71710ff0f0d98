package inning

import "fmt"

// Inning is one team's batting turn within a match. TotalScore is
// derived once from the inning's deliveries and frozen afterwards.
type Inning struct {
	ID          int64
	MatchNumber int64
	Seq         int
	BattingTeam string
	TotalScore  int
}

func (i Inning) Validate() error {
	if i.MatchNumber <= 0 {
		return fmt.Errorf("inning match number is required")
	}
	if i.Seq <= 0 {
		return fmt.Errorf("inning sequence must be greater than zero")
	}

	return nil
}
