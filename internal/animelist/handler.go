package animelist

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

type Handler struct {
	*catalog.Handler[models.AnimeEntry]
}

func NewHandler(repo *catalog.Repo[models.AnimeEntry], logger zerolog.Logger) *Handler {
	return &Handler{Handler: catalog.NewHandler(repo, logger, 0)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.All())              // GET /animes
	rg.GET("/search", h.Search("q")) // GET /animes/search?q=
}
