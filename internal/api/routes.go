package api

import (
	"log/slog"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
	"github.com/isaqu3d/star-wars-wiki-api/internal/service"
)

// RouteOptions configures route registration.
type RouteOptions struct {
	Errors ErrorHandler
	// BodyLimit caps JSON request bodies. Zero means no limit.
	BodyLimit int64
	Logger    *slog.Logger
}

// Mount registers every resource, relation and image route at the root
// of r (GET /characters, POST /planets, ...) and returns the OpenAPI
// document describing them.
func Mount(r chi.Router, c *service.Catalog, opts RouteOptions, version string) *openapi3.T {
	errs, log := opts.Errors, opts.Logger
	doc := NewOpenAPIDocument(version)

	images := NewImageHandler(c.Images, errs, log)
	characters := NewResourceHandler(c.Characters, errs, log).
		WithBodyLimit(opts.BodyLimit).
		WithRelations(
			NewRelationHandler(c.CharacterFilms, errs),
			NewRelationHandler(c.CharacterVehicles, errs),
			NewRelationHandler(c.CharacterStarships, errs),
			NewRelationHandler(c.CharacterHomeworld, errs),
		).
		WithItemRoutes(images.Routes)
	planets := NewResourceHandler(c.Planets, errs, log).
		WithBodyLimit(opts.BodyLimit).
		WithRelations(
			NewRelationHandler(c.PlanetFilms, errs),
			NewRelationHandler(c.PlanetResidents, errs),
		)
	films := NewResourceHandler(c.Films, errs, log).
		WithBodyLimit(opts.BodyLimit).
		WithRelations(
			NewRelationHandler(c.FilmCharacters, errs),
			NewRelationHandler(c.FilmPlanets, errs),
			NewRelationHandler(c.FilmStarships, errs),
		)
	starships := NewResourceHandler(c.Starships, errs, log).
		WithBodyLimit(opts.BodyLimit).
		WithRelations(
			NewRelationHandler(c.StarshipFilms, errs),
			NewRelationHandler(c.StarshipPilots, errs),
		)
	vehicles := NewResourceHandler(c.Vehicles, errs, log).
		WithBodyLimit(opts.BodyLimit).
		WithRelations(NewRelationHandler(c.VehiclePilots, errs))

	r.Mount("/"+domain.Characters.Plural, characters.Routes())
	r.Mount("/"+domain.Planets.Plural, planets.Routes())
	r.Mount("/"+domain.Films.Plural, films.Routes())
	r.Mount("/"+domain.Starships.Plural, starships.Routes())
	r.Mount("/"+domain.Vehicles.Plural, vehicles.Routes())

	DescribeResource(doc, domain.Characters,
		domain.CharacterFilms, domain.CharacterVehicles, domain.CharacterStarships, domain.CharacterHomeworld)
	DescribeCharacterImage(doc)
	DescribeResource(doc, domain.Planets, domain.PlanetFilms, domain.PlanetResidents)
	DescribeResource(doc, domain.Films, domain.FilmCharacters, domain.FilmPlanets, domain.FilmStarships)
	DescribeResource(doc, domain.Starships, domain.StarshipFilms, domain.StarshipPilots)
	DescribeResource(doc, domain.Vehicles, domain.VehiclePilots)
	return doc
}
