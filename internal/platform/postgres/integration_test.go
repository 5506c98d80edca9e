//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/postgres"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
	"github.com/isaqu3d/star-wars-wiki-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceStoreAgainstPostgres(t *testing.T) {
	db := testdb.Open(t)
	testdb.Reset(t, db)
	ctx := context.Background()

	planets := postgres.NewResourceStore(db, domain.Planets, nil)
	characters := postgres.NewResourceStore(db, domain.Characters, nil)
	films := postgres.NewResourceStore(db, domain.Films, nil)
	links := postgres.NewLinkStore(db, nil)

	tatooine, err := planets.Create(ctx, domain.Changes{"name": "Tatooine", "climate": "arid"})
	require.NoError(t, err)
	_, err = planets.Create(ctx, domain.Changes{"name": "Alderaan"})
	require.NoError(t, err)

	luke, err := characters.Create(ctx, domain.Changes{"name": "Luke Skywalker", "homeworld_id": tatooine.ID})
	require.NoError(t, err)
	require.NotNil(t, luke.HomeworldID)
	assert.Equal(t, tatooine.ID, *luke.HomeworldID)

	hope, err := films.Create(ctx, domain.Changes{"title": "A New Hope", "episode_id": 4})
	require.NoError(t, err)
	require.NoError(t, links.Link(ctx, domain.CharacterFilms, luke.ID, hope.ID))
	require.NoError(t, links.Link(ctx, domain.CharacterFilms, luke.ID, hope.ID), "linking twice is a no-op")

	t.Run("list search is case-insensitive and counts independently of paging", func(t *testing.T) {
		items, total, err := planets.List(ctx, store.ListFilter{Search: "TATO", OrderBy: "name", Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Tatooine", items[0].Name)

		items, total, err = planets.List(ctx, store.ListFilter{OrderBy: "name", Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Tatooine", items[0].Name)
	})

	t.Run("relations", func(t *testing.T) {
		related, err := films.ListRelated(ctx, domain.CharacterFilms, luke.ID)
		require.NoError(t, err)
		require.Len(t, related, 1)
		assert.Equal(t, "A New Hope", related[0].Title)

		home, err := planets.ListRelated(ctx, domain.CharacterHomeworld, luke.ID)
		require.NoError(t, err)
		require.Len(t, home, 1)
		assert.Equal(t, tatooine.ID, home[0].ID)

		residents, err := characters.ListRelated(ctx, domain.PlanetResidents, tatooine.ID)
		require.NoError(t, err)
		require.Len(t, residents, 1)
		assert.Equal(t, luke.ID, residents[0].ID)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		_, err := characters.Create(ctx, domain.Changes{"name": "Nobody", "homeworld_id": int64(9999)})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("partial update keeps other columns", func(t *testing.T) {
		updated, err := planets.Update(ctx, tatooine.ID, domain.Changes{"population": "200000"})
		require.NoError(t, err)
		require.NotNil(t, updated.Climate)
		assert.Equal(t, "arid", *updated.Climate)
		require.NotNil(t, updated.Population)
		assert.Equal(t, "200000", *updated.Population)
	})

	t.Run("delete cascades join rows", func(t *testing.T) {
		require.NoError(t, films.Delete(ctx, hope.ID))
		related, err := films.ListRelated(ctx, domain.CharacterFilms, luke.ID)
		require.NoError(t, err)
		assert.Empty(t, related)

		assert.ErrorIs(t, films.Delete(ctx, hope.ID), store.ErrNotFound)
	})
}

func TestTransactionsIsolateWrites(t *testing.T) {
	db := testdb.Open(t)
	testdb.Reset(t, db)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		planets := postgres.NewResourceStore(db, domain.Planets, nil).WithTx(tx)
		_, err := planets.Create(ctx, domain.Changes{"name": "Hoth"})
		require.NoError(t, err)

		_, total, err := planets.List(ctx, store.ListFilter{OrderBy: "id", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	exists, err := postgres.NewResourceStore(db, domain.Planets, nil).Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists, "rolled back insert must not be visible")
}

func TestUpdateColumnWhere(t *testing.T) {
	db := testdb.Open(t)
	testdb.Reset(t, db)
	ctx := context.Background()

	characters := postgres.NewResourceStore(db, domain.Characters, nil)
	_, err := characters.Create(ctx, domain.Changes{"name": "Leia Organa"})
	require.NoError(t, err)

	n, err := characters.UpdateColumnWhere(ctx, domain.CharacterImageColumn, "https://cdn.example.com/leia.png", "name", "Leia Organa")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = characters.UpdateColumnWhere(ctx, domain.CharacterImageColumn, "x", "name", "Nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
