package database

import (
	"context"
	"database/sql"
	"fmt"
)

type demoAnime struct {
	Title string
	Year  int
	Genre string
}

var demoAnimes = []demoAnime{
	{Title: "Naruto", Year: 2002, Genre: "Action"},
	{Title: "One Piece", Year: 1999, Genre: "Adventure"},
	{Title: "Death Note", Year: 2006, Genre: "Thriller"},
}

// SeedDemo fills the `animes` table with the demo entries, but only when it is empty.
// It returns the number of inserted rows.
func SeedDemo(ctx context.Context, db *sql.DB, d Dialect) (int, error) {
	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count animes: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, d.Rebind(fmt.Sprintf(
		`INSERT INTO animes (%s, %s, %s) VALUES (?, ?, ?)`,
		d.Quote("title"), d.Quote("year"), d.Quote("genre"),
	)))
	if err != nil {
		return 0, fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for _, a := range demoAnimes {
		if _, err := stmt.ExecContext(ctx, a.Title, a.Year, a.Genre); err != nil {
			return 0, fmt.Errorf("insert %s: %w", a.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return len(demoAnimes), nil
}

