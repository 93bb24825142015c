package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"animecatalog/internal/importer"
	"animecatalog/pkg/database"
	"animecatalog/pkg/utils"
)

// export-csv dumps the catalog tables in the layout import-csv reads.
func main() {
	var (
		dir     = flag.String("dir", "data/export", "output directory")
		timeout = flag.Duration("timeout", 10*time.Minute, "overall export timeout")
	)
	flag.Parse()

	cfg, err := utils.LoadConfig("export-csv")
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

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("dir", *dir).Msg("create output dir failed")
	}

	for _, t := range importer.Tables {
		path := filepath.Join(*dir, t.File)
		n, err := exportTable(ctx, db, dbCfg.Driver, t, path)
		if err != nil {
			logger.Fatal().Err(err).Str("file", path).Msg("export failed")
		}
		logger.Info().Str("table", t.Name).Str("file", path).Int("rows", n).Msg("exported")
	}
}

func exportTable(ctx context.Context, db *sql.DB, driver string, t importer.Table, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := importer.Export(ctx, db, database.DialectFor(driver), t, f)
	if err != nil {
		return n, err
	}
	return n, f.Close()
}
