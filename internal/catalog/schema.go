// Package catalog is the query layer shared by every catalog entity. A Schema
// describes one table; Repo runs the fixed set of read queries against it and
// Handler exposes them over gin.
package catalog

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Schema describes how one entity kind is stored.
type Schema[T any] struct {
	// Entity names the kind in logs, metrics and cache keys ("anime", "character").
	Entity string

	Table    string
	IDColumn string

	// Columns is the select list. Scan must read them in this order.
	Columns []string

	// SearchColumn is matched case-insensitively by Search.
	SearchColumn string

	// ImageColumn must be non-null for gallery and ranked listings.
	ImageColumn string

	// Filters maps a filter name to the column ListBy compares for equality.
	Filters map[string]string

	Scan func(Scanner) (T, error)
}

// Ranking is a fixed sort order over a nullable column. Rows with a NULL
// ranking column are excluded from the listing.
type Ranking struct {
	Name       string
	Column     string
	Descending bool
}
