package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
)

// NoStatsData is returned by StrikeRateByBatterAndMatch when the batter
// faced no deliveries in the match.
const NoStatsData = "No data found"

const matchDateLayout = "2006-01-02"

// StatsService answers read-only questions over ingested scorecards. It
// validates input shape here and leaves data semantics to the repository.
type StatsService struct {
	repo stats.Repository
}

func NewStatsService(repo stats.Repository) *StatsService {
	return &StatsService{repo: repo}
}

// MatchesByPlayer lists every match the player appeared in, on a roster
// or as player of the match.
func (s *StatsService) MatchesByPlayer(ctx context.Context, name string) ([]stats.MatchEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MatchesByPlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	return s.repo.MatchEventsByPlayer(ctx, name)
}

// WicketsByBowler lists the bowler's wicket-taking deliveries in
// delivery order.
func (s *StatsService) WicketsByBowler(ctx context.Context, name string) ([]stats.BowlerWicket, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.WicketsByBowler")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: bowler name is required", ErrInvalidInput)
	}

	return s.repo.WicketsByBowler(ctx, name)
}

// CumulativeRunsByBatter sums the batter's runs across every ingested
// match. An unknown batter scores zero.
func (s *StatsService) CumulativeRunsByBatter(ctx context.Context, name string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.CumulativeRunsByBatter")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: batter name is required", ErrInvalidInput)
	}

	return s.repo.CumulativeRunsByBatter(ctx, name)
}

// StrikeRateByBatterAndMatch renders runs/balls*100 with two decimals,
// or NoStatsData when the batter faced no deliveries in the match.
func (s *StatsService) StrikeRateByBatterAndMatch(ctx context.Context, name string, matchNumber int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.StrikeRateByBatterAndMatch")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: batter name is required", ErrInvalidInput)
	}
	if matchNumber <= 0 {
		return "", fmt.Errorf("%w: match number must be positive", ErrInvalidInput)
	}

	line, err := s.repo.BatterMatchLine(ctx, name, matchNumber)
	if err != nil {
		return "", err
	}
	if line.Balls == 0 {
		return NoStatsData, nil
	}

	rate := float64(line.Runs) / float64(line.Balls) * 100
	return strconv.FormatFloat(rate, 'f', 2, 64), nil
}

// TopBatsmen pages the run leaderboard, ordered by runs descending with
// name as the tie break.
func (s *StatsService) TopBatsmen(ctx context.Context, page, size int) ([]stats.BatterTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopBatsmen")
	defer span.End()

	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	return s.repo.TopBatsmen(ctx, size, page*size)
}

// TopWicketTakers pages the wicket leaderboard, ordered by wickets
// descending with name as the tie break.
func (s *StatsService) TopWicketTakers(ctx context.Context, page, size int) ([]stats.BowlerTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopWicketTakers")
	defer span.End()

	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	return s.repo.TopWicketTakers(ctx, size, page*size)
}

// PlayersByTeamAndMatch lists the team's roster for one match.
func (s *StatsService) PlayersByTeamAndMatch(ctx context.Context, teamName string, matchNumber int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayersByTeamAndMatch")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if matchNumber <= 0 {
		return nil, fmt.Errorf("%w: match number must be positive", ErrInvalidInput)
	}

	return s.repo.PlayersByTeamAndMatch(ctx, teamName, matchNumber)
}

// OfficialsByMatch lists every official linked to the match.
func (s *StatsService) OfficialsByMatch(ctx context.Context, matchNumber int64) ([]official.Official, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.OfficialsByMatch")
	defer span.End()

	if matchNumber <= 0 {
		return nil, fmt.Errorf("%w: match number must be positive", ErrInvalidInput)
	}

	return s.repo.OfficialsByMatch(ctx, matchNumber)
}

// InningScoresByDate lists inning totals for matches played on the given
// date, formatted yyyy-mm-dd.
func (s *StatsService) InningScoresByDate(ctx context.Context, date string) ([]stats.InningScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.InningScoresByDate")
	defer span.End()

	parsed, err := time.Parse(matchDateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, fmt.Errorf("%w: match date must be yyyy-mm-dd", ErrInvalidInput)
	}

	return s.repo.InningScoresByDate(ctx, parsed)
}

func validatePage(page, size int) error {
	if page < 0 {
		return fmt.Errorf("%w: page must not be negative", ErrInvalidInput)
	}
	if size < 1 {
		return fmt.Errorf("%w: size must be positive", ErrInvalidInput)
	}
	return nil
}
