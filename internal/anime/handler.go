package anime

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/catalog"
	"animecatalog/pkg/models"
)

type Handler struct {
	*catalog.Handler[models.Anime]
}

func NewHandler(repo *catalog.Repo[models.Anime], logger zerolog.Logger, maxLimit int) *Handler {
	return &Handler{Handler: catalog.NewHandler(repo, logger, maxLimit)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search("title"))                                  // GET /anime/search?title=
	rg.GET("/top-rated", h.Ranked(TopRated, catalog.DefaultRankedLimit))  // GET /anime/top-rated?limit=
	rg.GET("/popular", h.Ranked(MostPopular, catalog.DefaultRankedLimit)) // GET /anime/popular?limit=
	rg.GET("/type/:type", h.ByFilter("type", "type"))                     // GET /anime/type/TV
	rg.GET("/gallery", h.Gallery(catalog.DefaultGalleryLimit))            // GET /anime/gallery?limit=
	rg.GET("/count", h.Count())
	rg.GET("/:id", h.GetByID())
}
