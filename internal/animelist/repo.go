// Package animelist serves the slim demo listing kept in the animes table.
package animelist

import (
	"database/sql"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

var Schema = catalog.Schema[models.AnimeEntry]{
	Entity:       "anime_entry",
	Table:        "animes",
	IDColumn:     "id",
	Columns:      []string{"id", "title", "year", "genre"},
	SearchColumn: "title",
	Scan: func(s catalog.Scanner) (models.AnimeEntry, error) {
		var e models.AnimeEntry
		err := s.Scan(&e.ID, &e.Title, &e.Year, &e.Genre)
		return e, err
	},
}

func NewRepo(db *sql.DB, opts ...catalog.Option) *catalog.Repo[models.AnimeEntry] {
	return catalog.NewRepo(db, Schema, opts...)
}
