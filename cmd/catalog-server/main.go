package main

import (
	"context"
	"fmt"
	"os"

	"animecatalog/internal/server"
	"animecatalog/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig(utils.CatalogService)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(cfg.LogLevel, cfg.Service)

	deps, cleanup, err := server.Setup(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("startup failed")
	}
	defer cleanup()

	if err := server.Serve(cfg, logger, server.NewCatalogRouter(deps)); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		cleanup()
		os.Exit(1)
	}
}
