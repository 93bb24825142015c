package character

import (
	"database/sql"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

// Popular ranks characters by favorites, most favorited first.
var Popular = catalog.Ranking{Name: "popular", Column: "favorites", Descending: true}

var Schema = catalog.Schema[models.Character]{
	Entity:       "character",
	Table:        "characters",
	IDColumn:     "character_id",
	Columns:      []string{"character_id", "name", "name_kanji", "url", "image_url", "about", "favorites"},
	SearchColumn: "name",
	ImageColumn:  "image_url",
	Scan: func(s catalog.Scanner) (models.Character, error) {
		var c models.Character
		err := s.Scan(&c.CharacterID, &c.Name, &c.NameKanji, &c.URL, &c.ImageURL, &c.About, &c.Favorites)
		return c, err
	},
}

func NewRepo(db *sql.DB, opts ...catalog.Option) *catalog.Repo[models.Character] {
	return catalog.NewRepo(db, Schema, opts...)
}
