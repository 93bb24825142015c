package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/apperrors"
)

// Handler turns Repo operations into gin handlers. Entity packages decide the paths.
type Handler[T any] struct {
	Repo   *Repo[T]
	Logger zerolog.Logger

	// MaxLimit clamps client-supplied limits. Zero leaves them unbounded.
	MaxLimit int
}

func NewHandler[T any](repo *Repo[T], logger zerolog.Logger, maxLimit int) *Handler[T] {
	return &Handler[T]{
		Repo:     repo,
		Logger:   logger.With().Str("entity", repo.Entity()).Logger(),
		MaxLimit: maxLimit,
	}
}

// Search matches the query parameter param against the searchable column.
// A missing or blank term is rejected before the store is touched.
func (h *Handler[T]) Search(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := strings.TrimSpace(c.Query(param))
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": param + " required"})
			return
		}

		items, err := h.Repo.Search(c.Request.Context(), term)
		if err != nil {
			h.fail(c, "search failed", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetByID answers 404 with an empty body when the record does not exist.
func (h *Handler[T]) GetByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		item, err := h.Repo.FindByID(c.Request.Context(), id)
		if err != nil {
			h.fail(c, "get failed", err)
			return
		}
		if item == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func (h *Handler[T]) Ranked(rk Ranking, defaultLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := h.limit(c, defaultLimit)
		if !ok {
			return
		}

		items, err := h.Repo.ListRanked(c.Request.Context(), rk)
		if err != nil {
			h.fail(c, "list failed", err)
			return
		}
		c.JSON(http.StatusOK, Truncate(items, limit))
	}
}

func (h *Handler[T]) Gallery(defaultLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := h.limit(c, defaultLimit)
		if !ok {
			return
		}

		items, err := h.Repo.ListWithImages(c.Request.Context())
		if err != nil {
			h.fail(c, "list failed", err)
			return
		}
		c.JSON(http.StatusOK, Truncate(items, limit))
	}
}

// ByFilter lists records whose filter column equals the path parameter.
func (h *Handler[T]) ByFilter(filter, pathParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Repo.ListBy(c.Request.Context(), filter, c.Param(pathParam))
		if err != nil {
			h.fail(c, "list failed", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (h *Handler[T]) All() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Repo.List(c.Request.Context())
		if err != nil {
			h.fail(c, "list failed", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// Count writes the bare row count as the JSON body.
func (h *Handler[T]) Count() gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := h.Repo.Count(c.Request.Context())
		if err != nil {
			h.fail(c, "count failed", err)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}

func (h *Handler[T]) limit(c *gin.Context, def int) (int, bool) {
	limit, err := ParseLimit(c.Query("limit"), def, h.MaxLimit)
	if err != nil {
		var pe *apperrors.InvalidParameterError
		if errors.As(err, &pe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pe.Error()})
			return 0, false
		}
		h.fail(c, "invalid limit", err)
		return 0, false
	}
	return limit, true
}

func (h *Handler[T]) fail(c *gin.Context, msg string, err error) {
	h.Logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
