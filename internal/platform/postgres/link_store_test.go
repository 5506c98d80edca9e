package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkStoreLink(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewLinkStore(db, nil)

	query := regexp.QuoteMeta(
		`INSERT INTO "character_films" ("character_id", "film_id") VALUES ($1, $2) ON CONFLICT DO NOTHING`,
	)
	mock.ExpectExec(query).WithArgs(1, 4).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Link(context.Background(), domain.CharacterFilms, 1, 4))

	mock.ExpectExec(query).WithArgs(1, 99).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "character_films_film_id_fkey"})
	err := s.Link(context.Background(), domain.CharacterFilms, 1, 99)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkStoreRejectsForeignKeyRelations(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewLinkStore(db, nil)

	err := s.Link(context.Background(), domain.CharacterHomeworld, 1, 1)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	err = s.Link(context.Background(), domain.PlanetResidents, 1, 1)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	assert.NoError(t, mock.ExpectationsWereMet())
}
