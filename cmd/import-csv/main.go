package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"animecatalog/internal/importer"
	"animecatalog/pkg/database"
	"animecatalog/pkg/utils"
)

func main() {
	var (
		dir     = flag.String("dir", "data", "directory holding the CSV exports")
		only    = flag.String("table", "", "import a single table (details, characters or person_details)")
		limit   = flag.Int("limit", 0, "stop each table after this many rows (0 = all)")
		timeout = flag.Duration("timeout", 10*time.Minute, "overall import timeout")
	)
	flag.Parse()

	cfg, err := utils.LoadConfig("import-csv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(cfg.LogLevel, cfg.Service)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dbCfg := cfg.DatabaseConfig(logger)
	db := database.MustOpen(dbCfg, logger)
	defer db.Close()

	if err := database.Migrate(ctx, db, dbCfg.Driver); err != nil {
		logger.Fatal().Err(err).Msg("db migrate failed")
	}

	im := importer.New(db, database.DialectFor(dbCfg.Driver), logger)
	im.Limit = *limit

	imported := 0
	for _, t := range importer.Tables {
		if *only != "" && *only != t.Name {
			continue
		}
		path := filepath.Join(*dir, t.File)

		res, err := im.ImportFile(ctx, t, path)
		if errors.Is(err, fs.ErrNotExist) && *only == "" {
			logger.Warn().Str("file", path).Msg("export not found, skipping")
			continue
		}
		if err != nil {
			logger.Fatal().Err(err).Str("file", path).Msg("import failed")
		}
		logger.Info().
			Str("table", res.Table).
			Int("rows", res.Rows).
			Int("skipped", res.Skipped).
			Int("invalid_cells", res.InvalidCells).
			Msg("imported")
		imported++
	}

	if imported == 0 {
		logger.Fatal().Str("dir", *dir).Str("table", *only).Msg("nothing imported")
	}
}
