package postgres

import "time"

type matchTableModel struct {
	Number        int64     `db:"match_number"`
	Type          string    `db:"match_type"`
	City          string    `db:"city"`
	Venue         string    `db:"venue"`
	EventName     string    `db:"event_name"`
	TossWinner    string    `db:"toss_winner"`
	TossDecision  string    `db:"toss_decision"`
	PlayerOfMatch string    `db:"player_of_match"`
	Date          time.Time `db:"match_date"`
}
