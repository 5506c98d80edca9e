package domain

// Vehicle is an atmospheric or repulsorlift craft without a hyperdrive.
type Vehicle struct {
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
	VehicleClass         *string `json:"vehicle_class"`
}

// VehicleInput is the create/update payload for a vehicle.
type VehicleInput struct {
	craftInput
	VehicleClass *string `json:"vehicle_class" validate:"omitnil,max=255"`
}

// Changes implements Input.
func (in *VehicleInput) Changes() Changes {
	c := in.craftInput.changes()
	c["vehicle_class"] = str(in.VehicleClass)
	return c
}

// Vehicles describes the vehicles table.
var Vehicles = &Resource[Vehicle]{
	Singular:     "vehicle",
	Plural:       "vehicles",
	Label:        "Vehicle",
	Table:        "vehicles",
	SearchColumn: "name",
	SortColumns:  []string{"name", "id", "model", "manufacturer"},
	Columns:      append(craftColumns(), "vehicle_class"),
	Required:     []string{"name"},
	Scan: func(v *Vehicle) []any {
		return []any{
			&v.ID, &v.Name, &v.Model, &v.Manufacturer, &v.CostInCredits, &v.Length,
			&v.MaxAtmospheringSpeed, &v.Crew, &v.Passengers, &v.CargoCapacity,
			&v.Consumables, &v.VehicleClass,
		}
	},
	NewInput: func() Input { return &VehicleInput{} },
}
