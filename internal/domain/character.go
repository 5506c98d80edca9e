package domain

// Character is a person or droid. HomeworldID references Planet.ID.
type Character struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Height      *string `json:"height"`
	Mass        *string `json:"mass"`
	HairColor   *string `json:"hair_color"`
	SkinColor   *string `json:"skin_color"`
	EyeColor    *string `json:"eye_color"`
	BirthYear   *string `json:"birth_year"`
	Gender      *string `json:"gender"`
	HomeworldID *int64  `json:"homeworld_id"`
	ImageURL    *string `json:"image_url"`
}

// CharacterInput is the create/update payload for a character.
type CharacterInput struct {
	Name        *string `json:"name"         validate:"omitnil,min=1,max=255"`
	Height      *string `json:"height"       validate:"omitnil,max=255"`
	Mass        *string `json:"mass"         validate:"omitnil,max=255"`
	HairColor   *string `json:"hair_color"   validate:"omitnil,max=255"`
	SkinColor   *string `json:"skin_color"   validate:"omitnil,max=255"`
	EyeColor    *string `json:"eye_color"    validate:"omitnil,max=255"`
	BirthYear   *string `json:"birth_year"   validate:"omitnil,max=255"`
	Gender      *string `json:"gender"       validate:"omitnil,max=255"`
	HomeworldID *int64  `json:"homeworld_id" validate:"omitnil,gt=0"`
	ImageURL    *string `json:"image_url"    validate:"omitnil,max=2048"`
}

// Changes implements Input.
func (in *CharacterInput) Changes() Changes {
	return Changes{
		"name":         str(in.Name),
		"height":       str(in.Height),
		"mass":         str(in.Mass),
		"hair_color":   str(in.HairColor),
		"skin_color":   str(in.SkinColor),
		"eye_color":    str(in.EyeColor),
		"birth_year":   str(in.BirthYear),
		"gender":       str(in.Gender),
		"homeworld_id": num(in.HomeworldID),
		"image_url":    str(in.ImageURL),
	}
}

// CharacterImageColumn stores the public URL of the character portrait.
const CharacterImageColumn = "image_url"

// Characters describes the characters table.
// image_url is nullable in storage but must be supplied on create.
var Characters = &Resource[Character]{
	Singular:     "character",
	Plural:       "characters",
	Label:        "Character",
	Table:        "characters",
	SearchColumn: "name",
	SortColumns:  []string{"name", "id", "height", "mass"},
	Columns: []string{
		"name", "height", "mass", "hair_color", "skin_color", "eye_color",
		"birth_year", "gender", "homeworld_id", CharacterImageColumn,
	},
	Required: []string{"name", CharacterImageColumn},
	Scan: func(c *Character) []any {
		return []any{
			&c.ID, &c.Name, &c.Height, &c.Mass, &c.HairColor, &c.SkinColor,
			&c.EyeColor, &c.BirthYear, &c.Gender, &c.HomeworldID, &c.ImageURL,
		}
	},
	NewInput: func() Input { return &CharacterInput{} },
}
