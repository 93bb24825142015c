// Package server assembles the gin engines for the two deployments.
package server

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/anime"
	"animecatalog/internal/animelist"
	"animecatalog/internal/cache"
	"animecatalog/internal/catalog"
	"animecatalog/internal/character"
	"animecatalog/internal/health"
	"animecatalog/internal/middleware"
	"animecatalog/internal/person"
	"animecatalog/pkg/database"
)

// Deps are the shared resources handed to every handler. Cache may be nil.
type Deps struct {
	DB             *sql.DB
	Dialect        database.Dialect
	Cache          cache.Cache
	Logger         zerolog.Logger
	Health         *health.Reporter
	MaxLimit       int
	AllowedOrigins []string
}

func (d Deps) repoOptions() []catalog.Option {
	return []catalog.Option{
		catalog.WithDialect(d.Dialect),
		catalog.WithCache(d.Cache),
		catalog.WithLogger(d.Logger),
	}
}

func newEngine(d Deps) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.AllowedOrigins),
		middleware.Logger(d.Logger),
		middleware.Metrics(),
	)
	return router
}

// NewCatalogRouter serves anime, characters and people under /api.
func NewCatalogRouter(d Deps) *gin.Engine {
	router := newEngine(d)
	api := router.Group("/api")

	api.GET("/", d.Health.Info())
	api.GET("/health", d.Health.Health())

	opts := d.repoOptions()
	anime.NewHandler(anime.NewRepo(d.DB, opts...), d.Logger, d.MaxLimit).
		RegisterRoutes(api.Group("/anime"))
	character.NewHandler(character.NewRepo(d.DB, opts...), d.Logger, d.MaxLimit).
		RegisterRoutes(api.Group("/characters"))
	person.NewHandler(person.NewRepo(d.DB, opts...), d.Logger, d.MaxLimit).
		RegisterRoutes(api.Group("/people"))

	return router
}

// NewAnimesRouter serves the demo listing plus the bare liveness and db-check probes.
func NewAnimesRouter(d Deps) *gin.Engine {
	router := newEngine(d)

	router.GET("/health", d.Health.Liveness())
	router.GET("/db-check", d.Health.DBCheck())

	animelist.NewHandler(animelist.NewRepo(d.DB, d.repoOptions()...), d.Logger).
		RegisterRoutes(router.Group("/api/animes"))

	return router
}
