package domain

// Film is one of the saga's episodes.
type Film struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	EpisodeID    *int    `json:"episode_id"`
	OpeningCrawl *string `json:"opening_crawl"`
	Director     *string `json:"director"`
	Producer     *string `json:"producer"`
	ReleaseDate  *string `json:"release_date"`
}

// FilmInput is the create/update payload for a film.
type FilmInput struct {
	Title        *string `json:"title"         validate:"omitnil,min=1,max=255"`
	EpisodeID    *int    `json:"episode_id"    validate:"omitnil,gte=0"`
	OpeningCrawl *string `json:"opening_crawl" validate:"omitnil,max=10000"`
	Director     *string `json:"director"      validate:"omitnil,max=255"`
	Producer     *string `json:"producer"      validate:"omitnil,max=255"`
	ReleaseDate  *string `json:"release_date"  validate:"omitnil,max=255"`
}

// Changes implements Input.
func (in *FilmInput) Changes() Changes {
	return Changes{
		"title":         str(in.Title),
		"episode_id":    num(in.EpisodeID),
		"opening_crawl": str(in.OpeningCrawl),
		"director":      str(in.Director),
		"producer":      str(in.Producer),
		"release_date":  str(in.ReleaseDate),
	}
}

// Films describes the films table. Films are searched by title.
var Films = &Resource[Film]{
	Singular:     "film",
	Plural:       "films",
	Label:        "Film",
	Table:        "films",
	SearchColumn: "title",
	SortColumns:  []string{"title", "release_date", "episode_id", "id"},
	Columns: []string{
		"title", "episode_id", "opening_crawl", "director", "producer", "release_date",
	},
	Required: []string{"title"},
	Scan: func(f *Film) []any {
		return []any{
			&f.ID, &f.Title, &f.EpisodeID, &f.OpeningCrawl, &f.Director, &f.Producer, &f.ReleaseDate,
		}
	},
	NewInput: func() Input { return &FilmInput{} },
}
