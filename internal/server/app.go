package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/cache"
	"animecatalog/internal/health"
	"animecatalog/internal/metrics"
	"animecatalog/pkg/database"
	"animecatalog/pkg/utils"
)

const shutdownTimeout = 10 * time.Second

// Setup opens and migrates the store, seeds the demo table when cfg.Seed is
// set and builds the listing cache. The returned cleanup closes what Setup opened.
func Setup(ctx context.Context, cfg *utils.Config, logger zerolog.Logger) (Deps, func(), error) {
	dbCfg := cfg.DatabaseConfig(logger)
	db, err := database.Open(dbCfg)
	if err != nil {
		return Deps{}, nil, err
	}
	if err := database.Migrate(ctx, db, dbCfg.Driver); err != nil {
		db.Close()
		return Deps{}, nil, fmt.Errorf("db migrate failed: %w", err)
	}

	dialect := database.DialectFor(dbCfg.Driver)
	if cfg.Seed {
		n, err := database.SeedDemo(ctx, db, dialect)
		if err != nil {
			db.Close()
			return Deps{}, nil, err
		}
		logger.Info().Int("inserted", n).Msg("demo seed done")
	}

	c, err := cache.New(cfg.Cache.Provider, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           cfg.CacheTTL(logger),
		Logger:        logger,
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		Group:         "catalog",
	})
	if err != nil {
		// serve uncached when the backend is unreachable
		logger.Warn().Err(err).Str("provider", cfg.Cache.Provider).Msg("cache disabled")
		c = nil
	}

	deps := Deps{
		DB:             db,
		Dialect:        dialect,
		Cache:          c,
		Logger:         logger,
		Health:         health.NewReporter(db, cfg.Service, cfg.Database.Name, cfg.ProbeTimeout(logger), logger),
		MaxLimit:       cfg.Catalog.MaxLimit,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}
	cleanup := func() {
		if c != nil {
			if err := c.Close(); err != nil {
				logger.Warn().Err(err).Msg("cache close error")
			}
		}
		closeDB(db, logger)
	}
	return deps, cleanup, nil
}

func closeDB(db *sql.DB, logger zerolog.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn().Err(err).Msg("db close error")
	}
}

// Serve runs the API server, and the metrics listener when enabled, until
// SIGINT/SIGTERM or a listener error, then shuts both down gracefully.
func Serve(cfg *utils.Config, logger zerolog.Logger, router *gin.Engine) error {
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		metricsSrv = metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	listen := func(srv *http.Server, name string) {
		defer wg.Done()
		logger.Info().Str("addr", srv.Addr).Msgf("%s listening", name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s: %w", name, err)
		}
	}

	wg.Add(1)
	go listen(httpSrv, "HTTP API server")
	if metricsSrv != nil {
		wg.Add(1)
		go listen(metricsSrv, "metrics server")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var serveErr error
	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case serveErr = <-errCh:
		logger.Error().Err(serveErr).Msg("server error")
	}

	logger.Info().Msg("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown error")
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("metrics shutdown error")
		}
	}

	wg.Wait()
	logger.Info().Msg("servers stopped")
	return serveErr
}
