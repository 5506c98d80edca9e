package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/isaqu3d/star-wars-wiki-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("without storage", func(t *testing.T) {
		app, err := newApplication(context.Background(), testConfig(config.EnvDevelopment), log, db)
		require.NoError(t, err)
		assert.False(t, app.catalog.Images.Available())
		assert.NotNil(t, app.setupRouter())
	})

	t.Run("with storage", func(t *testing.T) {
		cfg := testConfig(config.EnvDevelopment)
		cfg.Storage = config.StorageConfig{
			Endpoint:        "https://account.r2.cloudflarestorage.com",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			Bucket:          "swapi",
			Region:          "auto",
		}
		app, err := newApplication(context.Background(), cfg, log, db)
		require.NoError(t, err)
		assert.True(t, app.catalog.Images.Available())
	})
}

func TestConfigurePool(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	configurePool(db, config.DatabaseConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetimeMinutes: 5})
	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}
