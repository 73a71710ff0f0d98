package httpapi

import (
	"time"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
)

type uploadResultDTO struct {
	Created bool `json:"created"`
}

type matchEventDTO struct {
	MatchNumber   int64  `json:"match_number"`
	MatchType     string `json:"match_type"`
	City          string `json:"city"`
	Venue         string `json:"venue"`
	EventName     string `json:"event_name"`
	Winner        string `json:"winner"`
	TossWinner    string `json:"toss_winner"`
	TossDecision  string `json:"toss_decision"`
	PlayerOfMatch string `json:"player_of_match"`
	MatchDate     string `json:"match_date"`
}

func matchEventToDTO(event stats.MatchEvent) matchEventDTO {
	matchDate := ""
	if !event.MatchDate.IsZero() {
		matchDate = event.MatchDate.Format(time.DateOnly)
	}

	return matchEventDTO{
		MatchNumber:   event.MatchNumber,
		MatchType:     event.MatchType,
		City:          event.City,
		Venue:         event.Venue,
		EventName:     event.EventName,
		Winner:        event.Winner,
		TossWinner:    event.TossWinner,
		TossDecision:  event.TossDecision,
		PlayerOfMatch: event.PlayerOfMatch,
		MatchDate:     matchDate,
	}
}

type bowlerWicketDTO struct {
	DeliveryID    int64  `json:"deliveryId"`
	Over          int    `json:"over"`
	Ball          int    `json:"ball"`
	Wicket        bool   `json:"wicket"`
	Batsman       string `json:"batsman"`
	Bowler        string `json:"bowler"`
	DismissalType string `json:"dismissalType"`
}

func bowlerWicketToDTO(wicket stats.BowlerWicket) bowlerWicketDTO {
	return bowlerWicketDTO{
		DeliveryID:    wicket.DeliveryID,
		Over:          wicket.Over,
		Ball:          wicket.Ball,
		Wicket:        wicket.Wicket,
		Batsman:       wicket.Batsman,
		Bowler:        wicket.Bowler,
		DismissalType: wicket.DismissalType,
	}
}

type batterRunsDTO struct {
	BatterName string `json:"batterName"`
	TotalRuns  int64  `json:"totalRuns"`
}

type strikeRateDTO struct {
	BatterName  string `json:"batterName"`
	MatchNumber int64  `json:"matchNumber"`
	StrikeRate  string `json:"strikeRate"`
}

type batterTotalDTO struct {
	Name string `json:"name"`
	Runs int64  `json:"runs"`
}

type bowlerTotalDTO struct {
	Name    string `json:"name"`
	Wickets int64  `json:"wickets"`
}

type playerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type officialDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type inningScoreDTO struct {
	MatchNumber int64  `json:"matchNumber"`
	InningID    int64  `json:"inningId"`
	BattingTeam string `json:"battingTeam"`
	TotalScore  int    `json:"totalScore"`
}
