package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"animecatalog/pkg/database"
)

// Export writes every row of t as CSV, header first, ordered by key. NULL
// cells are written empty so the output re-imports unchanged.
func Export(ctx context.Context, db *sql.DB, d database.Dialect, t Table, dst io.Writer) (int, error) {
	names := t.columnNames()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.Quote(n)
	}

	w := csv.NewWriter(dst)
	if err := w.Write(names); err != nil {
		return 0, err
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC",
		strings.Join(quoted, ", "), d.Quote(t.Name), d.Quote(t.Key)))
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", t.Name, err)
	}
	defer rows.Close()

	cells := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range cells {
		dest[i] = &cells[i]
	}
	record := make([]string, len(names))

	n := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return n, fmt.Errorf("scan %s: %w", t.Name, err)
		}
		for i, c := range cells {
			record[i] = c.String
		}
		if err := w.Write(record); err != nil {
			return n, err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("rows err: %w", err)
	}

	w.Flush()
	return n, w.Error()
}
