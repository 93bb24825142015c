package catalog

import (
	"strconv"
	"strings"

	"animecatalog/internal/apperrors"
)

const (
	DefaultRankedLimit  = 12
	DefaultGalleryLimit = 24
)

// ParseLimit reads a `limit` query value. Empty means def. Anything that is not a
// non-negative integer is rejected. When max > 0, larger values, def included, are clamped to max.
func ParseLimit(raw string, def, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	n := def
	if raw != "" {
		var err error
		n, err = strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, apperrors.NewInvalidParameterError("limit", raw, "must be a non-negative integer")
		}
	}
	if max > 0 && n > max {
		return max, nil
	}
	return n, nil
}

// Truncate keeps the first limit items, preserving order. A limit of zero yields an empty slice.
func Truncate[T any](items []T, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	if len(items) <= limit {
		return items
	}
	return items[:limit]
}
