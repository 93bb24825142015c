// Package importer loads the catalog CSV exports into the store.
package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"animecatalog/pkg/database"
)

// Result summarizes one file import.
type Result struct {
	Table string
	// Rows counts upserted rows.
	Rows int
	// Skipped counts rows without an identifier.
	Skipped int
	// InvalidCells counts numeric cells that did not parse and were stored as NULL.
	InvalidCells int
}

type Importer struct {
	DB      *sql.DB
	Dialect database.Dialect
	Logger  zerolog.Logger

	// Limit stops each import after that many rows. Zero imports everything.
	Limit int
}

func New(db *sql.DB, dialect database.Dialect, logger zerolog.Logger) *Importer {
	return &Importer{DB: db, Dialect: dialect, Logger: logger}
}

func (im *Importer) ImportFile(ctx context.Context, t Table, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{Table: t.Name}, err
	}
	defer f.Close()
	return im.Import(ctx, t, f)
}

// Import reads a CSV with a header row and upserts every row into t inside a
// single transaction. Columns are matched by header name; unknown headers are
// ignored and missing ones stored as NULL.
func (im *Importer) Import(ctx context.Context, t Table, src io.Reader) (Result, error) {
	res := Result{Table: t.Name}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := readHeader(r)
	if err != nil {
		return res, fmt.Errorf("read header: %w", err)
	}
	if _, ok := header[t.Key]; !ok {
		return res, fmt.Errorf("%s: header has no %q column", t.Name, t.Key)
	}

	tx, err := im.DB.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, im.Dialect.Upsert(t.Name, t.Key, t.columnNames()))
	if err != nil {
		return res, fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	line := 1
	for im.Limit == 0 || res.Rows < im.Limit {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return res, fmt.Errorf("read line %d: %w", line, err)
		}

		id := valueAt(header, row, t.Key)
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			res.Skipped++
			continue
		}

		args := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			v, ok := convert(c.Kind, valueAt(header, row, c.Name))
			if !ok {
				res.InvalidCells++
				im.Logger.Debug().Str("table", t.Name).Str("id", id).Str("column", c.Name).Msg("unparseable cell stored as NULL")
			}
			args[i] = v
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return res, fmt.Errorf("exec upsert for %s %s: %w", t.Name, id, err)
		}
		res.Rows++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit tx: %w", err)
	}
	return res, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		name = strings.TrimPrefix(name, "\ufeff")
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// convert maps a raw cell to its bind value. Empty cells are NULL. ok is false
// when a numeric cell did not parse.
func convert(kind Kind, raw string) (v any, ok bool) {
	if raw == "" {
		return nil, true
	}
	switch kind {
	case Int:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, true
		}
		// pandas exports integer columns with NaN as floats ("12.0")
		if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			return int64(f), true
		}
		return nil, false
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return f, true
	case List:
		if s := NormalizeList(raw); s != "" {
			return s, true
		}
		return nil, true
	default:
		return raw, true
	}
}

// NormalizeList turns a list literal such as "['Action', 'Drama']" into
// "Action, Drama". Input that is not bracketed is returned trimmed.
func NormalizeList(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return raw
	}

	var (
		items []string
		cur   strings.Builder
		quote rune
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			items = append(items, s)
		}
		cur.Reset()
	}
	for _, r := range raw[1 : len(raw)-1] {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			cur.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
		case r == ',':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return strings.Join(items, ", ")
}
