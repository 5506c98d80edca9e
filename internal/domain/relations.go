package domain

// Join tables.
const (
	CharacterFilmsTable     = "character_films"
	CharacterVehiclesTable  = "character_vehicles"
	CharacterStarshipsTable = "character_starships"
	PlanetFilmsTable        = "planet_films"
	StarshipFilmsTable      = "starship_films"
)

// Relations readable from a character.
var (
	CharacterFilms = Relation{
		Name: "films", Table: CharacterFilmsTable, OwnerColumn: "character_id", TargetColumn: "film_id",
	}
	CharacterVehicles = Relation{
		Name: "vehicles", Table: CharacterVehiclesTable, OwnerColumn: "character_id", TargetColumn: "vehicle_id",
	}
	CharacterStarships = Relation{
		Name: "starships", Table: CharacterStarshipsTable, OwnerColumn: "character_id", TargetColumn: "starship_id",
	}
	// CharacterHomeworld follows the homeworld_id foreign key; it yields at most one planet.
	CharacterHomeworld = Relation{
		Name: "homeworld", Table: "characters", OwnerColumn: IDColumn, TargetColumn: "homeworld_id",
	}
)

// Relations readable from a planet.
var (
	PlanetFilms = Relation{
		Name: "films", Table: PlanetFilmsTable, OwnerColumn: "planet_id", TargetColumn: "film_id",
	}
	PlanetResidents = Relation{
		Name: "residents", Table: "characters", OwnerColumn: "homeworld_id", TargetColumn: IDColumn,
	}
)

// Relations readable from a film.
var (
	FilmCharacters = Relation{
		Name: "characters", Table: CharacterFilmsTable, OwnerColumn: "film_id", TargetColumn: "character_id",
	}
	FilmPlanets = Relation{
		Name: "planets", Table: PlanetFilmsTable, OwnerColumn: "film_id", TargetColumn: "planet_id",
	}
	FilmStarships = Relation{
		Name: "starships", Table: StarshipFilmsTable, OwnerColumn: "film_id", TargetColumn: "starship_id",
	}
)

// Relations readable from starships and vehicles.
var (
	StarshipFilms = Relation{
		Name: "films", Table: StarshipFilmsTable, OwnerColumn: "starship_id", TargetColumn: "film_id",
	}
	StarshipPilots = Relation{
		Name: "pilots", Table: CharacterStarshipsTable, OwnerColumn: "starship_id", TargetColumn: "character_id",
	}
	VehiclePilots = Relation{
		Name: "pilots", Table: CharacterVehiclesTable, OwnerColumn: "vehicle_id", TargetColumn: "character_id",
	}
)
