package person

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

// Handler serves voice actors and staff under /people.
type Handler struct {
	*catalog.Handler[models.Person]
}

func NewHandler(repo *catalog.Repo[models.Person], logger zerolog.Logger, maxLimit int) *Handler {
	return &Handler{Handler: catalog.NewHandler(repo, logger, maxLimit)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search("name"))
	rg.GET("/popular", h.Ranked(Popular, catalog.DefaultRankedLimit))
	rg.GET("/gallery", h.Gallery(catalog.DefaultGalleryLimit))
	rg.GET("/all", h.All())
	rg.GET("/count", h.Count())
	rg.GET("/:id", h.GetByID())
}
