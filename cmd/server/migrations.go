package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/postgres"
)

// runMigrations executes a goose command against db with the embedded
// migrations.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	logger.Info("executing migrations", slog.String("command", command))
	return postgres.Migrate(ctx, db, command, logger)
}
