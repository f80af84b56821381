// Package app wires configuration, repositories, services and transport
// into runnable servers.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eprasetya/vlrscout/internal/collector"
	"github.com/eprasetya/vlrscout/internal/config"
	"github.com/eprasetya/vlrscout/internal/export"
	"github.com/eprasetya/vlrscout/internal/infrastructure/repository/memory"
	"github.com/eprasetya/vlrscout/internal/infrastructure/repository/postgres"
	"github.com/eprasetya/vlrscout/internal/interfaces/httpapi"
	"github.com/eprasetya/vlrscout/internal/platform/id"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
	"github.com/eprasetya/vlrscout/internal/usecase"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

// Services bundles the wired use cases plus whatever needs closing on
// shutdown.
type Services struct {
	Archive *usecase.ArchiveService
	Runs    *usecase.RunService
	Export  *export.Exporter

	closers []func() error
}

// Close releases held resources, last acquired first.
func (s *Services) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// BuildServices wires the full stack. With DATABASE_URL set, collected data
// lands in postgres; otherwise everything stays in memory.
func BuildServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	svcs := &Services{}

	var archive *usecase.ArchiveService
	if cfg.DBURL != "" {
		db, err := postgres.Connect(ctx, postgres.DBConfig{
			DSN:             cfg.DBURL,
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		})
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		svcs.closers = append(svcs.closers, db.Close)

		archive = usecase.NewArchiveService(
			postgres.NewEventRepository(db),
			postgres.NewMatchRepository(db),
			postgres.NewPlayerStatRepository(db),
			postgres.NewAgentUsageRepository(db),
			postgres.NewEconomyRepository(db),
			postgres.NewPerformanceRepository(db),
			logger,
		)
	} else {
		logger.Warn("DATABASE_URL not set, collected data is kept in memory only")
		archive = usecase.NewArchiveService(
			memory.NewEventRepository(),
			memory.NewMatchRepository(),
			memory.NewPlayerStatRepository(),
			memory.NewAgentUsageRepository(),
			memory.NewEconomyRepository(),
			memory.NewPerformanceRepository(),
			logger,
		)
	}

	fetcher := vlr.NewFetcher(vlr.FetcherConfig{
		BaseURL:   cfg.VLRBaseURL,
		UserAgent: cfg.VLRUserAgent,
		MinGap:    cfg.VLRMinGap,
		HTTPClient: &http.Client{
			Timeout: cfg.VLRHTTPTimeout,
		},
		Logger: logger,
	})

	runner := usecase.NewCollectorRunner(fetcher, logger)
	runs := usecase.NewRunService(runner, archive, memory.NewRunStore(), id.NewRandomGenerator("run_"), logger)

	svcs.Archive = archive
	svcs.Runs = runs
	svcs.Export = export.NewExporter(logger)
	return svcs, nil
}

// NewHTTPServer builds the API server on top of the wired services.
func NewHTTPServer(cfg config.Config, svcs *Services, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(svcs.Runs, svcs.Archive, svcs.Export, logger)
	router := httpapi.NewRouter(handler, logger)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// NewCollector builds a standalone collector for one-shot CLI runs.
func NewCollector(cfg config.Config, logger *logging.Logger, onProgress collector.ProgressFunc) *collector.Collector {
	fetcher := vlr.NewFetcher(vlr.FetcherConfig{
		BaseURL:   cfg.VLRBaseURL,
		UserAgent: cfg.VLRUserAgent,
		MinGap:    cfg.VLRMinGap,
		HTTPClient: &http.Client{
			Timeout: cfg.VLRHTTPTimeout,
		},
		Logger: logger,
	})
	return collector.New(fetcher, logger, onProgress)
}
