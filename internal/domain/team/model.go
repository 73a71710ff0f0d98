package team

import "fmt"

// Team is a cricket side. Identity is name-based: the same name across
// two scorecards refers to the same team row.
type Team struct {
	ID   int64
	Name string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
