package service

import (
	"log/slog"

	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/store"
)

// Stores holds one store per entity.
type Stores struct {
	Characters store.ResourceStore[domain.Character]
	Planets    store.ResourceStore[domain.Planet]
	Films      store.ResourceStore[domain.Film]
	Starships  store.ResourceStore[domain.Starship]
	Vehicles   store.ResourceStore[domain.Vehicle]
}

// Catalog holds every service the API exposes.
type Catalog struct {
	Characters *ResourceService[domain.Character]
	Planets    *ResourceService[domain.Planet]
	Films      *ResourceService[domain.Film]
	Starships  *ResourceService[domain.Starship]
	Vehicles   *ResourceService[domain.Vehicle]

	CharacterFilms     *RelationService[domain.Film]
	CharacterVehicles  *RelationService[domain.Vehicle]
	CharacterStarships *RelationService[domain.Starship]
	CharacterHomeworld *RelationService[domain.Planet]
	PlanetFilms        *RelationService[domain.Film]
	PlanetResidents    *RelationService[domain.Character]
	FilmCharacters     *RelationService[domain.Character]
	FilmPlanets        *RelationService[domain.Planet]
	FilmStarships      *RelationService[domain.Starship]
	StarshipFilms      *RelationService[domain.Film]
	StarshipPilots     *RelationService[domain.Character]
	VehiclePilots      *RelationService[domain.Character]

	Images *ImageService
}

// NewCatalog builds every service from stores. uploader may be nil.
func NewCatalog(stores Stores, uploader ImageUploader, logger *slog.Logger) (*Catalog, error) {
	var firstErr error
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	c := &Catalog{}
	var err error

	c.Characters, err = NewResourceService(domain.Characters, stores.Characters, logger)
	keep(err)
	c.Planets, err = NewResourceService(domain.Planets, stores.Planets, logger)
	keep(err)
	c.Films, err = NewResourceService(domain.Films, stores.Films, logger)
	keep(err)
	c.Starships, err = NewResourceService(domain.Starships, stores.Starships, logger)
	keep(err)
	c.Vehicles, err = NewResourceService(domain.Vehicles, stores.Vehicles, logger)
	keep(err)
	if firstErr != nil {
		return nil, firstErr
	}

	character, planet, film := domain.Characters.Label, domain.Planets.Label, domain.Films.Label
	starship, vehicle := domain.Starships.Label, domain.Vehicles.Label

	c.CharacterFilms, err = NewRelationService(domain.CharacterFilms, character, stores.Characters, stores.Films, logger)
	keep(err)
	c.CharacterVehicles, err = NewRelationService(domain.CharacterVehicles, character, stores.Characters, stores.Vehicles, logger)
	keep(err)
	c.CharacterStarships, err = NewRelationService(domain.CharacterStarships, character, stores.Characters, stores.Starships, logger)
	keep(err)
	c.CharacterHomeworld, err = NewRelationService(domain.CharacterHomeworld, character, stores.Characters, stores.Planets, logger)
	keep(err)
	c.PlanetFilms, err = NewRelationService(domain.PlanetFilms, planet, stores.Planets, stores.Films, logger)
	keep(err)
	c.PlanetResidents, err = NewRelationService(domain.PlanetResidents, planet, stores.Planets, stores.Characters, logger)
	keep(err)
	c.FilmCharacters, err = NewRelationService(domain.FilmCharacters, film, stores.Films, stores.Characters, logger)
	keep(err)
	c.FilmPlanets, err = NewRelationService(domain.FilmPlanets, film, stores.Films, stores.Planets, logger)
	keep(err)
	c.FilmStarships, err = NewRelationService(domain.FilmStarships, film, stores.Films, stores.Starships, logger)
	keep(err)
	c.StarshipFilms, err = NewRelationService(domain.StarshipFilms, starship, stores.Starships, stores.Films, logger)
	keep(err)
	c.StarshipPilots, err = NewRelationService(domain.StarshipPilots, starship, stores.Starships, stores.Characters, logger)
	keep(err)
	c.VehiclePilots, err = NewRelationService(domain.VehiclePilots, vehicle, stores.Vehicles, stores.Characters, logger)
	keep(err)

	c.Images, err = NewImageService(stores.Characters, uploader, logger)
	keep(err)

	if firstErr != nil {
		return nil, firstErr
	}
	return c, nil
}
