package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	data, err := fs.ReadFile(migrationsFS, files[0])
	require.NoError(t, err)
	sql := string(data)

	assert.True(t, strings.HasPrefix(sql, "-- +goose Up"))
	assert.Contains(t, sql, "-- +goose Down")
	for _, table := range []string{
		"planets", "characters", "vehicles", "starships", "films",
		"character_vehicles", "character_starships", "character_films", "planet_films", "starship_films",
	} {
		assert.Contains(t, sql, "CREATE TABLE "+table+" (", "missing table %s", table)
	}
	assert.Contains(t, sql, `"MGLT"`)
	assert.Contains(t, sql, "ON DELETE CASCADE")
}

func TestMigrateRejectsUnknownCommand(t *testing.T) {
	db, mock := newMockDB(t)

	err := Migrate(context.Background(), db, "drop-everything", nil)
	assert.ErrorContains(t, err, "unsupported migration command")
	assert.NoError(t, mock.ExpectationsWereMet())
}
