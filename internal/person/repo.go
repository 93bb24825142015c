package person

import (
	"database/sql"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

var Popular = catalog.Ranking{Name: "popular", Column: "favorites", Descending: true}

var Schema = catalog.Schema[models.Person]{
	Entity:   "person",
	Table:    "person_details",
	IDColumn: "person_id",
	Columns: []string{
		"person_id", "name", "given_name", "family_name", "birthday",
		"url", "image_url", "website_url", "favorites", "about",
	},
	SearchColumn: "name",
	ImageColumn:  "image_url",
	Scan: func(s catalog.Scanner) (models.Person, error) {
		var p models.Person
		err := s.Scan(&p.PersonID, &p.Name, &p.GivenName, &p.FamilyName, &p.Birthday,
			&p.URL, &p.ImageURL, &p.WebsiteURL, &p.Favorites, &p.About)
		return p, err
	},
}

func NewRepo(db *sql.DB, opts ...catalog.Option) *catalog.Repo[models.Person] {
	return catalog.NewRepo(db, Schema, opts...)
}
