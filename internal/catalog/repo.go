package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"animecatalog/internal/apperrors"
	"animecatalog/internal/cache"
	"animecatalog/internal/metrics"
	"animecatalog/pkg/database"
)

type repoOptions struct {
	dialect database.Dialect
	cache   cache.Cache
	logger  zerolog.Logger
}

// Option configures a Repo.
type Option func(*repoOptions)

// WithDialect selects placeholder and quoting rules. Defaults to sqlite.
func WithDialect(d database.Dialect) Option {
	return func(o *repoOptions) { o.dialect = d }
}

// WithCache memoizes gallery and ranked listings. A nil cache disables memoization.
func WithCache(c cache.Cache) Option {
	return func(o *repoOptions) { o.cache = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *repoOptions) { o.logger = l }
}

// Repo runs the catalog read queries for one entity kind.
type Repo[T any] struct {
	DB     *sql.DB
	schema Schema[T]
	opts   repoOptions

	selectList string
}

func NewRepo[T any](db *sql.DB, schema Schema[T], opts ...Option) *Repo[T] {
	o := repoOptions{
		dialect: database.DialectFor(database.DriverSQLite),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cols := make([]string, 0, len(schema.Columns))
	for _, c := range schema.Columns {
		cols = append(cols, o.dialect.Quote(c))
	}

	return &Repo[T]{
		DB:         db,
		schema:     schema,
		opts:       o,
		selectList: strings.Join(cols, ", "),
	}
}

// Entity returns the entity name from the schema.
func (r *Repo[T]) Entity() string {
	return r.schema.Entity
}

func (r *Repo[T]) q(ident string) string {
	return r.opts.dialect.Quote(ident)
}

// selectSQL builds `SELECT <cols> FROM <table> [WHERE ...] ORDER BY ...`.
func (r *Repo[T]) selectSQL(where, orderBy string) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(r.selectList)
	b.WriteString(" FROM ")
	b.WriteString(r.q(r.schema.Table))
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	return r.opts.dialect.Rebind(b.String())
}

func (r *Repo[T]) byID() string {
	return r.q(r.schema.IDColumn) + " ASC"
}

func (r *Repo[T]) record(op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.CatalogQueriesTotal.WithLabelValues(r.schema.Entity, op, result).Inc()
}

// FindByID returns the record with the given identifier, or nil when absent.
func (r *Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	row := r.DB.QueryRowContext(ctx, r.selectSQL(r.q(r.schema.IDColumn)+" = ?", ""), id)

	v, err := r.schema.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.record("find_by_id", nil)
			return nil, nil
		}
		r.record("find_by_id", err)
		return nil, fmt.Errorf("scan %s by id: %w", r.schema.Entity, err)
	}
	r.record("find_by_id", nil)
	return &v, nil
}

// escapeLike escapes LIKE metacharacters with '!' so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// Search returns records whose search column contains term, ignoring case.
func (r *Repo[T]) Search(ctx context.Context, term string) ([]T, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.ErrBlankTerm
	}

	where := "LOWER(" + r.q(r.schema.SearchColumn) + ") LIKE ? ESCAPE '!'"
	kw := "%" + escapeLike(strings.ToLower(term)) + "%"
	return r.list(ctx, "search", r.selectSQL(where, r.byID()), kw)
}

// ListWithImages returns every record whose image column is non-null.
func (r *Repo[T]) ListWithImages(ctx context.Context) ([]T, error) {
	return r.cached("with_images", func() ([]T, error) {
		where := r.q(r.schema.ImageColumn) + " IS NOT NULL"
		return r.list(ctx, "with_images", r.selectSQL(where, r.byID()))
	})
}

// ListRanked returns records with both the ranking column and the image set,
// ordered by the ranking and then by identifier.
func (r *Repo[T]) ListRanked(ctx context.Context, rk Ranking) ([]T, error) {
	return r.cached("ranked:"+rk.Name, func() ([]T, error) {
		where := r.q(rk.Column) + " IS NOT NULL AND " + r.q(r.schema.ImageColumn) + " IS NOT NULL"
		dir := " ASC"
		if rk.Descending {
			dir = " DESC"
		}
		return r.list(ctx, "ranked", r.selectSQL(where, r.q(rk.Column)+dir+", "+r.byID()))
	})
}

// ListBy returns records whose filter column equals value exactly.
func (r *Repo[T]) ListBy(ctx context.Context, filter, value string) ([]T, error) {
	col, ok := r.schema.Filters[filter]
	if !ok {
		return nil, &apperrors.UnknownFilterError{Entity: r.schema.Entity, Filter: filter}
	}
	return r.list(ctx, "by_"+filter, r.selectSQL(r.q(col)+" = ?", r.byID()), value)
}

// List returns every record ordered by identifier.
func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	return r.list(ctx, "list", r.selectSQL("", r.byID()))
}

func (r *Repo[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.q(r.schema.Table)).Scan(&n)
	r.record("count", err)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.schema.Entity, err)
	}
	return n, nil
}

func (r *Repo[T]) list(ctx context.Context, op, query string, args ...any) ([]T, error) {
	out, err := r.scanAll(ctx, query, args...)
	r.record(op, err)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, r.schema.Entity, err)
	}
	return out, nil
}

func (r *Repo[T]) scanAll(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := r.schema.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// cached memoizes load under "<entity>:<key>". The catalog is read-only after
// seeding, so entries only go stale through the importer; the TTL bounds that.
func (r *Repo[T]) cached(key string, load func() ([]T, error)) ([]T, error) {
	if r.opts.cache == nil {
		return load()
	}
	key = r.schema.Entity + ":" + key

	if b, ok := r.opts.cache.Get(key); ok {
		var out []T
		err := json.Unmarshal(b, &out)
		if err == nil {
			return out, nil
		}
		r.opts.logger.Warn().Err(err).Str("key", key).Msg("Dropping undecodable cache entry")
	}

	out, err := load()
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		r.opts.cache.Set(key, b)
	}
	return out, nil
}
