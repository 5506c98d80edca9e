package domain

// Planet is a world of the Star Wars universe.
// Measurements are free-form text so source values such as "unknown" survive.
type Planet struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	RotationPeriod *string `json:"rotation_period"`
	OrbitalPeriod  *string `json:"orbital_period"`
	Diameter       *string `json:"diameter"`
	Climate        *string `json:"climate"`
	Gravity        *string `json:"gravity"`
	Terrain        *string `json:"terrain"`
	SurfaceWater   *string `json:"surface_water"`
	Population     *string `json:"population"`
}

// PlanetInput is the create/update payload for a planet.
type PlanetInput struct {
	Name           *string `json:"name"            validate:"omitnil,min=1,max=255"`
	RotationPeriod *string `json:"rotation_period" validate:"omitnil,max=255"`
	OrbitalPeriod  *string `json:"orbital_period"  validate:"omitnil,max=255"`
	Diameter       *string `json:"diameter"        validate:"omitnil,max=255"`
	Climate        *string `json:"climate"         validate:"omitnil,max=255"`
	Gravity        *string `json:"gravity"         validate:"omitnil,max=255"`
	Terrain        *string `json:"terrain"         validate:"omitnil,max=255"`
	SurfaceWater   *string `json:"surface_water"   validate:"omitnil,max=255"`
	Population     *string `json:"population"      validate:"omitnil,max=255"`
}

// Changes implements Input.
func (in *PlanetInput) Changes() Changes {
	return Changes{
		"name":            str(in.Name),
		"rotation_period": str(in.RotationPeriod),
		"orbital_period":  str(in.OrbitalPeriod),
		"diameter":        str(in.Diameter),
		"climate":         str(in.Climate),
		"gravity":         str(in.Gravity),
		"terrain":         str(in.Terrain),
		"surface_water":   str(in.SurfaceWater),
		"population":      str(in.Population),
	}
}

// Planets describes the planets table.
var Planets = &Resource[Planet]{
	Singular:     "planet",
	Plural:       "planets",
	Label:        "Planet",
	Table:        "planets",
	SearchColumn: "name",
	SortColumns:  []string{"name", "id", "diameter", "population"},
	Columns: []string{
		"name", "rotation_period", "orbital_period", "diameter", "climate",
		"gravity", "terrain", "surface_water", "population",
	},
	Required: []string{"name"},
	Scan: func(p *Planet) []any {
		return []any{
			&p.ID, &p.Name, &p.RotationPeriod, &p.OrbitalPeriod, &p.Diameter,
			&p.Climate, &p.Gravity, &p.Terrain, &p.SurfaceWater, &p.Population,
		}
	},
	NewInput: func() Input { return &PlanetInput{} },
}
