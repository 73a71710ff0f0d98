package outcome

import "fmt"

// Outcome records the result of a match. Exactly one row exists per
// ingested match; fields stay empty when the document carries no
// outcome section.
type Outcome struct {
	MatchNumber int64
	Winner      string
	Result      string
}

func (o Outcome) Validate() error {
	if o.MatchNumber <= 0 {
		return fmt.Errorf("outcome match number is required")
	}

	return nil
}
