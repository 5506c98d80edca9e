package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// ErrAlreadySeeded is returned when the database already holds planets.
var ErrAlreadySeeded = errors.New("database already seeded")

// Stores are the stores the seeder writes through.
type Stores struct {
	Characters store.ResourceStore[domain.Character]
	Planets    store.ResourceStore[domain.Planet]
	Films      store.ResourceStore[domain.Film]
	Starships  store.ResourceStore[domain.Starship]
	Vehicles   store.ResourceStore[domain.Vehicle]
	Links      store.LinkStore
}

func (s Stores) withTx(tx *sql.Tx) Stores {
	return Stores{
		Characters: s.Characters.WithTx(tx),
		Planets:    s.Planets.WithTx(tx),
		Films:      s.Films.WithTx(tx),
		Starships:  s.Starships.WithTx(tx),
		Vehicles:   s.Vehicles.WithTx(tx),
		Links:      s.Links.WithTx(tx),
	}
}

// Result counts the rows written by Seed.
type Result struct {
	Planets    int
	Characters int
	Vehicles   int
	Starships  int
	Films      int
	Links      int
}

// Seeder loads a Data set in a single transaction.
type Seeder struct {
	db     *sql.DB
	stores Stores
	logger *slog.Logger
}

// NewSeeder creates a Seeder. If logger is nil, a default logger will be used.
func NewSeeder(db *sql.DB, stores Stores, logger *slog.Logger) (*Seeder, error) {
	if db == nil {
		return nil, errors.New("seed: db cannot be nil")
	}
	if stores.Characters == nil || stores.Planets == nil || stores.Films == nil ||
		stores.Starships == nil || stores.Vehicles == nil || stores.Links == nil {
		return nil, errors.New("seed: every store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		db:     db,
		stores: stores,
		logger: logger.With(slog.String("component", "seeder")),
	}, nil
}

// Seed inserts data. It refuses to run when planets already exist, and
// writes nothing if any row fails.
func (s *Seeder) Seed(ctx context.Context, data Data) (Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, total, err := s.stores.Planets.List(ctx, store.ListFilter{OrderBy: domain.IDColumn, Limit: 1})
	if err != nil {
		return Result{}, fmt.Errorf("check existing planets: %w", err)
	}
	if total > 0 {
		return Result{}, ErrAlreadySeeded
	}

	var res Result
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		st := s.stores.withTx(tx)
		ids := make(map[string]map[string]int64, 5)

		planets, err := insertAll(ctx, st.Planets, domain.Planets, data.Planets, func(p *domain.Planet) int64 { return p.ID })
		if err != nil {
			return err
		}
		ids[domain.Planets.Plural] = planets

		characters := make([]domain.Changes, 0, len(data.Characters))
		for _, row := range data.Characters {
			row, err := resolveHomeworld(row, planets)
			if err != nil {
				return err
			}
			characters = append(characters, row)
		}
		if ids[domain.Characters.Plural], err = insertAll(ctx, st.Characters, domain.Characters, characters,
			func(c *domain.Character) int64 { return c.ID }); err != nil {
			return err
		}
		if ids[domain.Vehicles.Plural], err = insertAll(ctx, st.Vehicles, domain.Vehicles, data.Vehicles,
			func(v *domain.Vehicle) int64 { return v.ID }); err != nil {
			return err
		}
		if ids[domain.Starships.Plural], err = insertAll(ctx, st.Starships, domain.Starships, data.Starships,
			func(v *domain.Starship) int64 { return v.ID }); err != nil {
			return err
		}
		if ids[domain.Films.Plural], err = insertAll(ctx, st.Films, domain.Films, data.Films,
			func(f *domain.Film) int64 { return f.ID }); err != nil {
			return err
		}

		for _, l := range data.Links {
			owner, err := lookup(ids, l.Relation.OwnerColumn, l.Owner)
			if err != nil {
				return err
			}
			target, err := lookup(ids, l.Relation.TargetColumn, l.Target)
			if err != nil {
				return err
			}
			if err := st.Links.Link(ctx, l.Relation, owner, target); err != nil {
				return fmt.Errorf("link %s %q to %q: %w", l.Relation.Table, l.Owner, l.Target, err)
			}
		}

		res = Result{
			Planets:    len(data.Planets),
			Characters: len(data.Characters),
			Vehicles:   len(data.Vehicles),
			Starships:  len(data.Starships),
			Films:      len(data.Films),
			Links:      len(data.Links),
		}
		return nil
	})
	if err != nil {
		log.Error("seeding failed", slog.String("error", err.Error()))
		return Result{}, err
	}

	log.Info("database seeded",
		slog.Int("planets", res.Planets),
		slog.Int("characters", res.Characters),
		slog.Int("vehicles", res.Vehicles),
		slog.Int("starships", res.Starships),
		slog.Int("films", res.Films),
		slog.Int("links", res.Links))
	return res, nil
}

// insertAll creates every row and returns their ids keyed by the value of
// the resource's search column.
func insertAll[T any](
	ctx context.Context,
	st store.ResourceStore[T],
	resource *domain.Resource[T],
	rows []domain.Changes,
	id func(*T) int64,
) (map[string]int64, error) {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		key, _ := row[resource.SearchColumn].(string)
		created, err := st.Create(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("create %s %q: %w", resource.Singular, key, err)
		}
		out[key] = id(created)
	}
	return out, nil
}

func resolveHomeworld(row domain.Changes, planets map[string]int64) (domain.Changes, error) {
	name, ok := row[homeworldKey].(string)
	if !ok {
		return row, nil
	}
	id, found := planets[name]
	if !found {
		return nil, fmt.Errorf("homeworld %q was not seeded", name)
	}
	out := maps.Clone(row)
	delete(out, homeworldKey)
	out["homeworld_id"] = id
	return out, nil
}

// resourceByColumn maps join table columns to the resource they reference.
var resourceByColumn = map[string]string{
	"character_id": domain.Characters.Plural,
	"planet_id":    domain.Planets.Plural,
	"film_id":      domain.Films.Plural,
	"starship_id":  domain.Starships.Plural,
	"vehicle_id":   domain.Vehicles.Plural,
}

func lookup(ids map[string]map[string]int64, column, name string) (int64, error) {
	resource, ok := resourceByColumn[column]
	if !ok {
		return 0, fmt.Errorf("column %q does not reference a seeded resource", column)
	}
	id, ok := ids[resource][name]
	if !ok {
		return 0, fmt.Errorf("%s %q was not seeded", resource, name)
	}
	return id, nil
}
