package character

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

type Handler struct {
	*catalog.Handler[models.Character]
}

func NewHandler(repo *catalog.Repo[models.Character], logger zerolog.Logger, maxLimit int) *Handler {
	return &Handler{Handler: catalog.NewHandler(repo, logger, maxLimit)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search("name"))                               // GET /characters/search?name=
	rg.GET("/popular", h.Ranked(Popular, catalog.DefaultRankedLimit)) // GET /characters/popular?limit=
	rg.GET("/gallery", h.Gallery(catalog.DefaultGalleryLimit))
	rg.GET("/all", h.All())
	rg.GET("/count", h.Count())
	rg.GET("/:id", h.GetByID())
}
