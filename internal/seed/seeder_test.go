package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/mocks"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db         sqlmock.Sqlmock
	seeder     *Seeder
	characters *mocks.ResourceStore[domain.Character]
	planets    *mocks.ResourceStore[domain.Planet]
	films      *mocks.ResourceStore[domain.Film]
	starships  *mocks.ResourceStore[domain.Starship]
	vehicles   *mocks.ResourceStore[domain.Vehicle]
	links      *mocks.LinkStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &fixture{
		db:         dbMock,
		characters: &mocks.ResourceStore[domain.Character]{},
		planets:    &mocks.ResourceStore[domain.Planet]{},
		films:      &mocks.ResourceStore[domain.Film]{},
		starships:  &mocks.ResourceStore[domain.Starship]{},
		vehicles:   &mocks.ResourceStore[domain.Vehicle]{},
		links:      &mocks.LinkStore{},
	}
	f.seeder, err = NewSeeder(db, Stores{
		Characters: f.characters,
		Planets:    f.planets,
		Films:      f.films,
		Starships:  f.starships,
		Vehicles:   f.vehicles,
		Links:      f.links,
	}, nil)
	require.NoError(t, err)
	return f
}

var emptyCheck = store.ListFilter{OrderBy: domain.IDColumn, Limit: 1}

func named(key, value string) any {
	return mock.MatchedBy(func(c domain.Changes) bool { return c[key] == value })
}

func TestSeed(t *testing.T) {
	t.Parallel()

	data := Data{
		Planets: []domain.Changes{{"name": "Tatooine"}},
		Characters: []domain.Changes{
			{"name": "Luke Skywalker", homeworldKey: "Tatooine"},
		},
		Films: []domain.Changes{{"title": "A New Hope", "episode_id": 4}},
		Links: []Link{
			{domain.CharacterFilms, "Luke Skywalker", "A New Hope"},
			{domain.PlanetFilms, "Tatooine", "A New Hope"},
		},
	}

	t.Run("inserts rows and links them", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		f.planets.On("List", mock.Anything, emptyCheck).Return([]*domain.Planet{}, 0, nil)
		f.db.ExpectBegin()
		f.planets.On("Create", mock.Anything, named("name", "Tatooine")).
			Return(&domain.Planet{ID: 7, Name: "Tatooine"}, nil)
		f.characters.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Changes) bool {
			_, leaked := c[homeworldKey]
			return c["name"] == "Luke Skywalker" && c["homeworld_id"] == int64(7) && !leaked
		})).Return(&domain.Character{ID: 3, Name: "Luke Skywalker"}, nil)
		f.films.On("Create", mock.Anything, named("title", "A New Hope")).
			Return(&domain.Film{ID: 11, Title: "A New Hope"}, nil)
		f.links.On("Link", mock.Anything, domain.CharacterFilms, int64(3), int64(11)).Return(nil)
		f.links.On("Link", mock.Anything, domain.PlanetFilms, int64(7), int64(11)).Return(nil)
		f.db.ExpectCommit()

		ctx, logs := logger.NewTestContext(t)
		res, err := f.seeder.Seed(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, Result{Planets: 1, Characters: 1, Films: 1, Links: 2}, res)
		assert.Equal(t, "Tatooine", data.Characters[0][homeworldKey], "input rows are not modified")
		logger.AssertLogContains(t, logs, "database seeded")
		logger.AssertLogField(t, logs, "links", float64(2))

		require.NoError(t, f.db.ExpectationsWereMet())
		f.planets.AssertExpectations(t)
		f.characters.AssertExpectations(t)
		f.films.AssertExpectations(t)
		f.links.AssertExpectations(t)
	})

	t.Run("refuses a populated database", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		f.planets.On("List", mock.Anything, emptyCheck).Return([]*domain.Planet{{ID: 1}}, 60, nil)

		_, err := f.seeder.Seed(context.Background(), data)
		assert.ErrorIs(t, err, ErrAlreadySeeded)
		require.NoError(t, f.db.ExpectationsWereMet())
		f.planets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		f.planets.On("List", mock.Anything, emptyCheck).Return([]*domain.Planet{}, 0, nil)
		f.db.ExpectBegin()
		f.planets.On("Create", mock.Anything, mock.Anything).Return(nil, store.ErrInvalidEntity)
		f.db.ExpectRollback()

		_, err := f.seeder.Seed(context.Background(), data)
		require.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), `create planet "Tatooine"`)
		require.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("unknown link target", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		f.planets.On("List", mock.Anything, emptyCheck).Return([]*domain.Planet{}, 0, nil)
		f.db.ExpectBegin()
		f.planets.On("Create", mock.Anything, mock.Anything).Return(&domain.Planet{ID: 1}, nil)
		f.db.ExpectRollback()

		_, err := f.seeder.Seed(context.Background(), Data{
			Planets: []domain.Changes{{"name": "Hoth"}},
			Links:   []Link{{domain.PlanetFilms, "Hoth", "The Empire Strikes Back"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `films "The Empire Strikes Back" was not seeded`)
		require.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("check failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.planets.On("List", mock.Anything, emptyCheck).Return(nil, 0, errors.New("connection refused"))

		_, err := f.seeder.Seed(context.Background(), data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check existing planets")
	})
}

func TestNewSeederRequiresStores(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = NewSeeder(db, Stores{}, nil)
	assert.Error(t, err)
	_, err = NewSeeder(nil, Stores{}, nil)
	assert.Error(t, err)
}

func TestDefaultDataIsConsistent(t *testing.T) {
	t.Parallel()

	names := func(rows []domain.Changes, column string) map[string]bool {
		out := make(map[string]bool, len(rows))
		for _, row := range rows {
			name, ok := row[column].(string)
			require.True(t, ok, "row without %s: %v", column, row)
			require.False(t, out[name], "duplicate %q", name)
			out[name] = true
		}
		return out
	}
	seeded := map[string]map[string]bool{
		domain.Planets.Plural:    names(Default.Planets, domain.Planets.SearchColumn),
		domain.Characters.Plural: names(Default.Characters, domain.Characters.SearchColumn),
		domain.Vehicles.Plural:   names(Default.Vehicles, domain.Vehicles.SearchColumn),
		domain.Starships.Plural:  names(Default.Starships, domain.Starships.SearchColumn),
		domain.Films.Plural:      names(Default.Films, domain.Films.SearchColumn),
	}

	for _, row := range Default.Characters {
		home, ok := row[homeworldKey].(string)
		require.True(t, ok)
		assert.True(t, seeded[domain.Planets.Plural][home], "unknown homeworld %q", home)
	}
	for _, l := range Default.Links {
		assert.True(t, seeded[resourceByColumn[l.Relation.OwnerColumn]][l.Owner], "unknown owner %q", l.Owner)
		assert.True(t, seeded[resourceByColumn[l.Relation.TargetColumn]][l.Target], "unknown target %q", l.Target)
	}
}
