package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riskibarqy/cricket-scorecard/internal/config"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
	"github.com/riskibarqy/cricket-scorecard/internal/infrastructure/auditlog"
	cachedrepo "github.com/riskibarqy/cricket-scorecard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-scorecard/internal/interfaces/httpapi"
	platformcache "github.com/riskibarqy/cricket-scorecard/internal/platform/cache"
	"github.com/riskibarqy/cricket-scorecard/internal/platform/logging"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Server *http.Server

	stores *Stores
	audit  auditlog.Publisher
}

// New wires repositories, services and the router.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	stores, err := NewStores(cfg, logger)
	if err != nil {
		return nil, err
	}

	var statsRepo stats.Repository = stores.Stats
	if cfg.CacheEnabled {
		statsRepo = cachedrepo.NewStatsRepository(statsRepo, platformcache.NewStore(cfg.CacheTTL))
	}

	var audit auditlog.Publisher = auditlog.NopPublisher{}
	if cfg.AuditLogEnabled {
		publisher, err := auditlog.NewHTTPPublisher(auditlog.HTTPPublisherConfig{
			Endpoint:  cfg.AuditLogEndpoint,
			Token:     cfg.AuditLogToken,
			Timeout:   cfg.AuditLogTimeout,
			QueueSize: cfg.AuditLogQueueSize,
		}, logger)
		if err != nil {
			_ = stores.Close()
			return nil, fmt.Errorf("build audit log publisher: %w", err)
		}
		audit = publisher
	}

	ingestionService := usecase.NewIngestionService(stores.TxManager, logging.Default())
	statsService := usecase.NewStatsService(statsRepo)

	handler := httpapi.NewHandler(ingestionService, statsService, audit, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = stores.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, stores: stores, audit: audit}, nil
}

// Close flushes the audit queue and releases the database pool. Call it
// after the HTTP server has shut down.
func (a *App) Close() error {
	a.audit.Close()
	return a.stores.Close()
}
