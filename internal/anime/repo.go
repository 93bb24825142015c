package anime

import (
	"database/sql"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

var (
	// TopRated orders by score, best first.
	TopRated = catalog.Ranking{Name: "top_rated", Column: "score", Descending: true}
	// MostPopular follows the popularity rank convention: 1 is the most popular.
	MostPopular = catalog.Ranking{Name: "popular", Column: "popularity"}
)

var Schema = catalog.Schema[models.Anime]{
	Entity:   "anime",
	Table:    "details",
	IDColumn: "mal_id",
	Columns: []string{
		"mal_id", "title", "title_japanese", "title_english", "type", "source",
		"episodes", "status", "aired_from", "aired_to", "duration", "rating",
		"score", "scored_by", "rank", "popularity", "members", "favorites",
		"synopsis", "background", "premiered", "broadcast", "studios", "genres",
		"url", "image_url", "trailer_url",
	},
	SearchColumn: "title",
	ImageColumn:  "image_url",
	Filters:      map[string]string{"type": "type"},
	Scan:         scan,
}

func scan(s catalog.Scanner) (models.Anime, error) {
	var a models.Anime
	err := s.Scan(
		&a.MalID, &a.Title, &a.TitleJapanese, &a.TitleEnglish, &a.Type, &a.Source,
		&a.Episodes, &a.Status, &a.AiredFrom, &a.AiredTo, &a.Duration, &a.Rating,
		&a.Score, &a.ScoredBy, &a.Rank, &a.Popularity, &a.Members, &a.Favorites,
		&a.Synopsis, &a.Background, &a.Premiered, &a.Broadcast, &a.Studios, &a.Genres,
		&a.URL, &a.ImageURL, &a.TrailerURL,
	)
	return a, err
}

func NewRepo(db *sql.DB, opts ...catalog.Option) *catalog.Repo[models.Anime] {
	return catalog.NewRepo(db, Schema, opts...)
}
