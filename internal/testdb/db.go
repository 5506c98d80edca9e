//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// DatabaseURLEnv names an existing database to test against.
const DatabaseURLEnv = "SWAPI_TEST_DATABASE_URL"

// Image is the PostgreSQL image started when no database URL is provided.
const Image = "postgres:16-alpine"

// Open returns a connection to a migrated database. The connection and any
// container started for it are released when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		dsn = startContainer(t, ctx)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		t.Fatalf("ping test database: %v", err)
	}

	if err := postgres.Migrate(ctx, db, "up", nil); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func startContainer(t *testing.T, ctx context.Context) string {
	t.Helper()
	container, err := tcpostgres.Run(ctx, Image,
		tcpostgres.WithDatabase("swapi"),
		tcpostgres.WithUsername("swapi"),
		tcpostgres.WithPassword("swapi"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container connection string: %v", err)
	}
	return dsn
}

// WithTx runs fn in a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin test transaction: %v", err)
	}
	defer func() { _ = tx.Rollback() }()
	fn(t, tx)
}

// Reset empties every table and restarts their id sequences.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()
	tables := []string{
		domain.CharacterFilmsTable, domain.CharacterVehiclesTable, domain.CharacterStarshipsTable,
		domain.PlanetFilmsTable, domain.StarshipFilmsTable,
		domain.Characters.Table, domain.Planets.Table, domain.Films.Table,
		domain.Starships.Table, domain.Vehicles.Table,
	}
	query := "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := db.ExecContext(context.Background(), query); err != nil {
		t.Fatalf("reset test database: %v", err)
	}
}
