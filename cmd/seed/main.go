// Package main loads the reference data set into the database and, when
// object storage is configured, uploads character portraits.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/isaqu3d/star-wars-wiki-api/internal/config"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/objectstore"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/postgres"
	"github.com/isaqu3d/star-wars-wiki-api/internal/redact"
	"github.com/isaqu3d/star-wars-wiki-api/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	migrate := flag.Bool("migrate", true, "apply pending migrations before seeding")
	skipData := flag.Bool("skip-data", false, "do not insert the reference data set")
	imagesDir := flag.String("images", "", "directory of character images to upload (file name is the character name)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrate, *skipData, *imagesDir); err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, migrate, skipData bool, imagesDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log, logCloser, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %s", redact.String(err.Error()))
	}
	defer func() { _ = db.Close() }()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %s", redact.String(err.Error()))
	}

	if migrate {
		if err := postgres.Migrate(ctx, db, "up", log); err != nil {
			return err
		}
	}

	characters := postgres.NewResourceStore(db, domain.Characters, log)

	if !skipData {
		seeder, err := seed.NewSeeder(db, seed.Stores{
			Characters: characters,
			Planets:    postgres.NewResourceStore(db, domain.Planets, log),
			Films:      postgres.NewResourceStore(db, domain.Films, log),
			Starships:  postgres.NewResourceStore(db, domain.Starships, log),
			Vehicles:   postgres.NewResourceStore(db, domain.Vehicles, log),
			Links:      postgres.NewLinkStore(db, log),
		}, log)
		if err != nil {
			return err
		}
		if _, err := seeder.Seed(ctx, seed.Default); err != nil {
			if !errors.Is(err, seed.ErrAlreadySeeded) {
				return err
			}
			log.Info("reference data already present, skipping")
		}
	}

	if imagesDir == "" {
		return nil
	}
	uploader, err := objectstore.NewUploader(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("cannot seed images: %w", err)
	}
	res, err := seed.NewImageSeeder(characters, uploader, log).SeedImages(ctx, os.DirFS(imagesDir))
	if err != nil {
		return err
	}
	log.Info("character images seeded",
		slog.Int("uploaded", res.Uploaded),
		slog.Int64("updated", res.Updated),
		slog.Int("skipped", res.Skipped),
		slog.Int("unmatched", len(res.Unmatched)))
	return nil
}
