package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"

	"github.com/riskibarqy/cricket-scorecard/internal/config"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
	"github.com/riskibarqy/cricket-scorecard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-scorecard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

// Stores is the persistence pair every entry point needs: the write
// side behind a transaction manager and the read side for stats.
type Stores struct {
	TxManager usecase.TxManager
	Stats     stats.Repository

	db *sqlx.DB
}

// NewStores opens postgres when DB_URL is set and falls back to the
// in-memory store otherwise, which keeps local runs and CI
// database-free.
func NewStores(cfg config.Config, logger *slog.Logger) (*Stores, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.DBURL == "" {
		logger.Info("DB_URL empty, using in-memory store")
		store := memory.NewStore()
		return &Stores{TxManager: store, Stats: store}, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)

	return &Stores{
		TxManager: postgres.NewTxManager(db),
		Stats:     postgres.NewStatsRepository(db),
		db:        db,
	}, nil
}

func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
