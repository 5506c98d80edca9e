package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/isaqu3d/star-wars-wiki-api/internal/api/middleware"
	"github.com/isaqu3d/star-wars-wiki-api/internal/config"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/objectstore"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/postgres"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metricsNamespace prefixes every exported Prometheus metric.
const metricsNamespace = "swapi"

// application holds the shared dependencies of the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB
	catalog *service.Catalog
	metrics *middleware.Metrics
}

// newApplication wires stores, the optional image uploader and services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	stores := service.Stores{
		Characters: postgres.NewResourceStore(db, domain.Characters, logger),
		Planets:    postgres.NewResourceStore(db, domain.Planets, logger),
		Films:      postgres.NewResourceStore(db, domain.Films, logger),
		Starships:  postgres.NewResourceStore(db, domain.Starships, logger),
		Vehicles:   postgres.NewResourceStore(db, domain.Vehicles, logger),
	}

	// An unconfigured bucket leaves uploads disabled; the interface must stay
	// a literal nil in that case.
	var uploader service.ImageUploader
	if cfg.Storage.Enabled() {
		u, err := objectstore.NewUploader(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create image uploader: %w", err)
		}
		uploader = u
	} else {
		logger.Warn("object storage not configured, character image uploads are disabled")
	}

	catalog, err := service.NewCatalog(stores, uploader, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	metrics := middleware.NewMetrics(metricsNamespace)
	metrics.Registry().MustRegister(collectors.NewDBStatsCollector(db, "postgres"))

	return &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		catalog: catalog,
		metrics: metrics,
	}, nil
}
