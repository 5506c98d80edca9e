package seed

import "github.com/isaqu3d/star-wars-wiki-api/internal/domain"

// Link joins two seeded rows through a join table. Owner and Target are
// the names (or titles, for films) of the rows being linked.
type Link struct {
	Relation domain.Relation
	Owner    string
	Target   string
}

// Data is a complete seed data set. Character rows may name their
// homeworld under the "homeworld" key; it is resolved to homeworld_id
// after planets are inserted.
type Data struct {
	Planets    []domain.Changes
	Characters []domain.Changes
	Vehicles   []domain.Changes
	Starships  []domain.Changes
	Films      []domain.Changes
	Links      []Link
}

// homeworldKey names the planet a seeded character lives on.
const homeworldKey = "homeworld"

// Default is the reference data set loaded by cmd/seed.
var Default = Data{
	Planets: []domain.Changes{
		{
			"name":            "Tatooine",
			"rotation_period": "23",
			"orbital_period":  "304",
			"diameter":        "10465",
			"climate":         "arid",
			"gravity":         "1 standard",
			"terrain":         "desert",
			"surface_water":   "1",
			"population":      "200000",
		},
		{
			"name":            "Alderaan",
			"rotation_period": "24",
			"orbital_period":  "364",
			"diameter":        "12500",
			"climate":         "temperate",
			"gravity":         "1 standard",
			"terrain":         "grasslands, mountains",
			"surface_water":   "40",
			"population":      "2000000000",
		},
	},
	Characters: []domain.Changes{
		{
			"name":       "Luke Skywalker",
			"height":     "172",
			"mass":       "77",
			"hair_color": "blond",
			"skin_color": "fair",
			"eye_color":  "blue",
			"birth_year": "19BBY",
			"gender":     "male",
			homeworldKey: "Tatooine",
		},
		{
			"name":       "Leia Organa",
			"height":     "150",
			"mass":       "49",
			"hair_color": "brown",
			"skin_color": "light",
			"eye_color":  "brown",
			"birth_year": "19BBY",
			"gender":     "female",
			homeworldKey: "Alderaan",
		},
	},
	Vehicles: []domain.Changes{
		{
			"name":                   "Sand Crawler",
			"model":                  "Digger Crawler",
			"manufacturer":           "Corellia Mining Corporation",
			"cost_in_credits":        "150000",
			"length":                 "36.8",
			"max_atmosphering_speed": "30",
			"crew":                   "46",
			"passengers":             "30",
			"cargo_capacity":         "50000",
			"consumables":            "2 months",
			"vehicle_class":          "wheeled",
		},
		{
			"name":                   "T-16 skyhopper",
			"model":                  "T-16 skyhopper",
			"manufacturer":           "Incom Corporation",
			"cost_in_credits":        "14500",
			"length":                 "10.4",
			"max_atmosphering_speed": "1200",
			"crew":                   "1",
			"passengers":             "1",
			"cargo_capacity":         "50",
			"consumables":            "0",
			"vehicle_class":          "repulsorcraft",
		},
	},
	Starships: []domain.Changes{
		{
			"name":                   "CR90 corvette",
			"model":                  "CR90 corvette",
			"manufacturer":           "Corellian Engineering Corporation",
			"cost_in_credits":        "3500000",
			"length":                 "150",
			"max_atmosphering_speed": "950",
			"crew":                   "30-165",
			"passengers":             "600",
			"cargo_capacity":         "3000000",
			"consumables":            "1 year",
			"hyperdrive_rating":      "2.0",
			"MGLT":                   "60",
			"starship_class":         "corvette",
		},
		{
			"name":                   "Star Destroyer",
			"model":                  "Imperial I-class Star Destroyer",
			"manufacturer":           "Kuat Drive Yards",
			"cost_in_credits":        "150000000",
			"length":                 "1600",
			"max_atmosphering_speed": "975",
			"crew":                   "47060",
			"passengers":             "n/a",
			"cargo_capacity":         "36000000",
			"consumables":            "2 years",
			"hyperdrive_rating":      "2.0",
			"MGLT":                   "60",
			"starship_class":         "Star Destroyer",
		},
	},
	Films: []domain.Changes{
		{
			"title":         "A New Hope",
			"episode_id":    4,
			"opening_crawl": "It is a period of civil war...",
			"director":      "George Lucas",
			"producer":      "Gary Kurtz, Rick McCallum",
			"release_date":  "1977-05-25",
		},
	},
	Links: []Link{
		{domain.CharacterVehicles, "Luke Skywalker", "Sand Crawler"},
		{domain.CharacterVehicles, "Luke Skywalker", "T-16 skyhopper"},
		{domain.CharacterStarships, "Luke Skywalker", "CR90 corvette"},
		{domain.CharacterFilms, "Luke Skywalker", "A New Hope"},
		{domain.CharacterFilms, "Leia Organa", "A New Hope"},
		{domain.PlanetFilms, "Tatooine", "A New Hope"},
		{domain.PlanetFilms, "Alderaan", "A New Hope"},
		{domain.StarshipFilms, "CR90 corvette", "A New Hope"},
		{domain.StarshipFilms, "Star Destroyer", "A New Hope"},
	},
}
