package database

import "testing"

func TestDialect_Rebind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		driver string
		in     string
		want   string
	}{
		{
			name:   "sqlite keeps question marks",
			driver: DriverSQLite,
			in:     "SELECT * FROM details WHERE mal_id = ?",
			want:   "SELECT * FROM details WHERE mal_id = ?",
		},
		{
			name:   "mysql keeps question marks",
			driver: DriverMySQL,
			in:     "SELECT * FROM details WHERE type = ? AND score > ?",
			want:   "SELECT * FROM details WHERE type = ? AND score > ?",
		},
		{
			name:   "postgres numbers placeholders",
			driver: DriverPostgres,
			in:     "SELECT * FROM details WHERE type = ? AND score > ?",
			want:   "SELECT * FROM details WHERE type = $1 AND score > $2",
		},
		{
			name:   "postgres numbers past nine",
			driver: DriverPostgres,
			in:     "VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			want:   "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
		},
		{
			name:   "postgres leaves escape literal alone",
			driver: DriverPostgres,
			in:     "SELECT * FROM details WHERE LOWER(title) LIKE ? ESCAPE '!'",
			want:   "SELECT * FROM details WHERE LOWER(title) LIKE $1 ESCAPE '!'",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DialectFor(tt.driver).Rebind(tt.in)
			if got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialect_Quote(t *testing.T) {
	t.Parallel()

	if got := DialectFor(DriverMySQL).Quote("rank"); got != "`rank`" {
		t.Errorf("mysql Quote() = %q, want %q", got, "`rank`")
	}
	if got := DialectFor(DriverPostgres).Quote("rank"); got != `"rank"` {
		t.Errorf("postgres Quote() = %q, want %q", got, `"rank"`)
	}
	if got := DialectFor(DriverSQLite).Quote("image_url"); got != `"image_url"` {
		t.Errorf("sqlite Quote() = %q, want %q", got, `"image_url"`)
	}
}

func TestDialect_Upsert(t *testing.T) {
	t.Parallel()
	cols := []string{"character_id", "name", "favorites"}

	tests := []struct {
		driver string
		want   string
	}{
		{
			driver: DriverSQLite,
			want:   `INSERT INTO "characters" ("character_id", "name", "favorites") VALUES (?, ?, ?) ON CONFLICT ("character_id") DO UPDATE SET "name" = excluded."name", "favorites" = excluded."favorites"`,
		},
		{
			driver: DriverPostgres,
			want:   `INSERT INTO "characters" ("character_id", "name", "favorites") VALUES ($1, $2, $3) ON CONFLICT ("character_id") DO UPDATE SET "name" = excluded."name", "favorites" = excluded."favorites"`,
		},
		{
			driver: DriverMySQL,
			want:   "INSERT INTO `characters` (`character_id`, `name`, `favorites`) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE `name` = VALUES(`name`), `favorites` = VALUES(`favorites`)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.driver, func(t *testing.T) {
			t.Parallel()
			if got := DialectFor(tt.driver).Upsert("characters", "character_id", cols); got != tt.want {
				t.Errorf("Upsert() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}

	if got := DialectFor(DriverMySQL).Upsert("t", "id", []string{"id"}); got != "INSERT IGNORE INTO `t` (`id`) VALUES (?)" {
		t.Errorf("key-only mysql Upsert() = %q", got)
	}
}
