package database

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// Dialect hides the placeholder and quoting differences between the supported drivers.
type Dialect struct {
	Driver string
}

func DialectFor(driver string) Dialect {
	return Dialect{Driver: driver}
}

// Rebind rewrites `?` placeholders into the driver's bind style, `$n` for postgres.
// Queries must not carry a literal `?` of their own.
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(d.Driver), query)
}

// Quote quotes an identifier. `rank` is reserved in MySQL 8, so every column goes through here.
func (d Dialect) Quote(ident string) string {
	if d.Driver == DriverMySQL {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}

// Upsert builds an insert of cols into table that overwrites the non-key
// columns when a row with the same key exists.
func (d Dialect) Upsert(table, key string, cols []string) string {
	quoted := make([]string, len(cols))
	marks := make([]string, len(cols))
	var sets []string
	for i, c := range cols {
		quoted[i] = d.Quote(c)
		marks[i] = "?"
		if c == key {
			continue
		}
		if d.Driver == DriverMySQL {
			sets = append(sets, quoted[i]+" = VALUES("+quoted[i]+")")
		} else {
			sets = append(sets, quoted[i]+" = excluded."+quoted[i])
		}
	}

	q := "INSERT INTO " + d.Quote(table) + " (" + strings.Join(quoted, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	switch {
	case len(sets) == 0 && d.Driver == DriverMySQL:
		q = "INSERT IGNORE" + strings.TrimPrefix(q, "INSERT")
	case len(sets) == 0:
		q += " ON CONFLICT (" + d.Quote(key) + ") DO NOTHING"
	case d.Driver == DriverMySQL:
		q += " ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
	default:
		q += " ON CONFLICT (" + d.Quote(key) + ") DO UPDATE SET " + strings.Join(sets, ", ")
	}
	return d.Rebind(q)
}
