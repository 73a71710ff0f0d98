package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/delivery"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/inning"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/match"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/outcome"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/team"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

// TxManager opens one database transaction per unit of work. Repository
// handles inside the callback all run on the same *sqlx.Tx.
type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, uow usecase.UnitOfWork) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &txUnit{ext: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

type txUnit struct {
	ext sqlx.ExtContext
}

func (u *txUnit) Matches() match.Repository       { return NewMatchRepository(u.ext) }
func (u *txUnit) Teams() team.Repository          { return NewTeamRepository(u.ext) }
func (u *txUnit) Players() player.Repository      { return NewPlayerRepository(u.ext) }
func (u *txUnit) Officials() official.Repository  { return NewOfficialRepository(u.ext) }
func (u *txUnit) Innings() inning.Repository      { return NewInningRepository(u.ext) }
func (u *txUnit) Deliveries() delivery.Repository { return NewDeliveryRepository(u.ext) }
func (u *txUnit) Outcomes() outcome.Repository    { return NewOutcomeRepository(u.ext) }
