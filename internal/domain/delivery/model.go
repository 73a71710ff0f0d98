package delivery

import "fmt"

// Delivery is one ball bowled, the atomic unit of scoring data.
// (Over, Ball) is unique within an inning; insertion order is play order.
type Delivery struct {
	ID            int64
	InningID      int64
	Over          int
	Ball          int
	Batter        string
	Bowler        string
	Runs          int
	Wicket        bool
	DismissalType string
}

func (d Delivery) Validate() error {
	if d.InningID <= 0 {
		return fmt.Errorf("delivery inning id is required")
	}
	if d.Ball <= 0 {
		return fmt.Errorf("delivery ball number must be greater than zero")
	}
	if !d.Wicket && d.DismissalType != "" {
		return fmt.Errorf("dismissal type set on a delivery without a wicket")
	}

	return nil
}
