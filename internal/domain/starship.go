package domain

// Starship is a hyperdrive-capable craft.
type Starship struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Model                *string `json:"model"`
	Manufacturer         *string `json:"manufacturer"`
	CostInCredits        *string `json:"cost_in_credits"`
	Length               *string `json:"length"`
	MaxAtmospheringSpeed *string `json:"max_atmosphering_speed"`
	Crew                 *string `json:"crew"`
	Passengers           *string `json:"passengers"`
	CargoCapacity        *string `json:"cargo_capacity"`
	Consumables          *string `json:"consumables"`
	HyperdriveRating     *string `json:"hyperdrive_rating"`
	MGLT                 *string `json:"MGLT"`
	StarshipClass        *string `json:"starship_class"`
}

// StarshipInput is the create/update payload for a starship.
type StarshipInput struct {
	craftInput
	HyperdriveRating *string `json:"hyperdrive_rating" validate:"omitnil,max=255"`
	MGLT             *string `json:"MGLT"              validate:"omitnil,max=255"`
	StarshipClass    *string `json:"starship_class"    validate:"omitnil,max=255"`
}

// Changes implements Input.
func (in *StarshipInput) Changes() Changes {
	c := in.craftInput.changes()
	c["hyperdrive_rating"] = str(in.HyperdriveRating)
	c["MGLT"] = str(in.MGLT)
	c["starship_class"] = str(in.StarshipClass)
	return c
}

// Starships describes the starships table. The MGLT column keeps its
// upper-case name, so every identifier is quoted when SQL is built.
var Starships = &Resource[Starship]{
	Singular:     "starship",
	Plural:       "starships",
	Label:        "Starship",
	Table:        "starships",
	SearchColumn: "name",
	SortColumns:  []string{"name", "id", "model", "manufacturer"},
	Columns:      append(craftColumns(), "hyperdrive_rating", "MGLT", "starship_class"),
	Required:     []string{"name"},
	Scan: func(s *Starship) []any {
		return []any{
			&s.ID, &s.Name, &s.Model, &s.Manufacturer, &s.CostInCredits, &s.Length,
			&s.MaxAtmospheringSpeed, &s.Crew, &s.Passengers, &s.CargoCapacity,
			&s.Consumables, &s.HyperdriveRating, &s.MGLT, &s.StarshipClass,
		}
	},
	NewInput: func() Input { return &StarshipInput{} },
}

// craftInput holds the fields vehicles and starships share.
type craftInput struct {
	Name                 *string `json:"name"                   validate:"omitnil,min=1,max=255"`
	Model                *string `json:"model"                  validate:"omitnil,max=255"`
	Manufacturer         *string `json:"manufacturer"           validate:"omitnil,max=255"`
	CostInCredits        *string `json:"cost_in_credits"        validate:"omitnil,max=255"`
	Length               *string `json:"length"                 validate:"omitnil,max=255"`
	MaxAtmospheringSpeed *string `json:"max_atmosphering_speed" validate:"omitnil,max=255"`
	Crew                 *string `json:"crew"                   validate:"omitnil,max=255"`
	Passengers           *string `json:"passengers"             validate:"omitnil,max=255"`
	CargoCapacity        *string `json:"cargo_capacity"         validate:"omitnil,max=255"`
	Consumables          *string `json:"consumables"            validate:"omitnil,max=255"`
}

func (in *craftInput) changes() Changes {
	return Changes{
		"name":                   str(in.Name),
		"model":                  str(in.Model),
		"manufacturer":           str(in.Manufacturer),
		"cost_in_credits":        str(in.CostInCredits),
		"length":                 str(in.Length),
		"max_atmosphering_speed": str(in.MaxAtmospheringSpeed),
		"crew":                   str(in.Crew),
		"passengers":             str(in.Passengers),
		"cargo_capacity":         str(in.CargoCapacity),
		"consumables":            str(in.Consumables),
	}
}

func craftColumns() []string {
	return []string{
		"name", "model", "manufacturer", "cost_in_credits", "length",
		"max_atmosphering_speed", "crew", "passengers", "cargo_capacity", "consumables",
	}
}
