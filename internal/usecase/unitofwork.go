package usecase

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/delivery"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/inning"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/match"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/outcome"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/team"
)

// UnitOfWork groups the repositories touched by one ingestion. Every
// write issued through it belongs to the same transaction scope.
type UnitOfWork interface {
	Matches() match.Repository
	Teams() team.Repository
	Players() player.Repository
	Officials() official.Repository
	Innings() inning.Repository
	Deliveries() delivery.Repository
	Outcomes() outcome.Repository
}

// TxManager runs fn inside one atomic unit of work: the writes commit
// iff fn returns nil and roll back in full on every other exit path.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
