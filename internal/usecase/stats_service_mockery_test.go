package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
	statsmock "github.com/riskibarqy/cricket-scorecard/internal/mocks/domain/stats"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_TopBatsmen_PagingUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := statsmock.NewRepository(t)
	service := NewStatsService(repo)

	expected := []stats.BatterTotal{
		{Name: "V Sehwag", Runs: 120},
		{Name: "RT Ponting", Runs: 95},
	}

	// page 2 with size 2 must translate to limit=2 offset=4.
	repo.
		On("TopBatsmen", mock.MatchedBy(func(v context.Context) bool { return v != nil }), 2, 4).
		Return(expected, nil).
		Once()

	got, err := service.TopBatsmen(ctx, 2, 2)
	if err != nil {
		t.Fatalf("top batsmen: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected row count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].Name != expected[0].Name {
		t.Fatalf("unexpected leader: got=%s want=%s", got[0].Name, expected[0].Name)
	}
}

func TestStatsService_StrikeRate_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := statsmock.NewRepository(t)
	service := NewStatsService(repo)

	repoErr := errors.New("connection reset")
	repo.
		On("BatterMatchLine", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "V Sehwag", int64(5)).
		Return(stats.BatterMatchLine{}, repoErr).
		Once()

	_, err := service.StrikeRateByBatterAndMatch(ctx, "V Sehwag", 5)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestStatsService_TopWicketTakers_InvalidPageSkipsRepositoryUsingMockery(t *testing.T) {
	t.Parallel()

	repo := statsmock.NewRepository(t)
	service := NewStatsService(repo)

	_, err := service.TopWicketTakers(context.Background(), -1, 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
