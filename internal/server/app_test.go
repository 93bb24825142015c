package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"animecatalog/internal/cache"
	"animecatalog/pkg/database"
	"animecatalog/pkg/utils"
)

func fileConfig(t *testing.T, service string) *utils.Config {
	t.Helper()
	cfg, err := utils.LoadConfig(service, t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.Database.Driver = database.DriverSQLite
	cfg.Database.DSN = filepath.Join(t.TempDir(), "data", "catalog.db")
	return cfg
}

func TestSetup_SeedsDemoStore(t *testing.T) {
	t.Parallel()
	cfg := fileConfig(t, utils.DemoService)

	deps, cleanup, err := Setup(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer cleanup()

	var n int
	if err := deps.DB.QueryRow(`SELECT COUNT(*) FROM animes`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("animes = %d, want 3", n)
	}
	if deps.Cache == nil {
		t.Error("memory cache expected by default")
	}
	if got := deps.Health.Check(context.Background()); got.Status != "connected" {
		t.Errorf("health = %+v", got)
	}
}

func TestSetup_CatalogDoesNotSeed(t *testing.T) {
	t.Parallel()
	cfg := fileConfig(t, utils.CatalogService)
	cfg.Cache.Provider = cache.ProviderNone

	deps, cleanup, err := Setup(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer cleanup()

	var n int
	if err := deps.DB.QueryRow(`SELECT COUNT(*) FROM animes`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("animes = %d, want 0", n)
	}
	if deps.Cache != nil {
		t.Error("cache should be disabled for provider none")
	}
}

func TestSetup_UnreachableRedisFallsBackToNoCache(t *testing.T) {
	t.Parallel()
	cfg := fileConfig(t, utils.CatalogService)
	cfg.Cache.Provider = cache.ProviderRedis
	cfg.Cache.Redis.Address = "127.0.0.1:1"

	deps, cleanup, err := Setup(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer cleanup()

	if deps.Cache != nil {
		t.Error("expected caching disabled when redis is unreachable")
	}
}

func TestSetup_UnknownDriver(t *testing.T) {
	t.Parallel()
	cfg := fileConfig(t, utils.CatalogService)
	cfg.Database.Driver = "oracle"
	cfg.Database.DSN = "whatever"

	if _, _, err := Setup(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
