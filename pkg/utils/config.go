package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"animecatalog/pkg/database"
)

// Config is shared by both servers and the importer. Durations are Go
// duration strings ("5s", "10m") parsed on access.
type Config struct {
	Service string `mapstructure:"service"`
	Server  struct {
		Address string `mapstructure:"address"`
		Port    int    `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver          string `mapstructure:"driver"`
		DSN             string `mapstructure:"dsn"`
		Name            string `mapstructure:"name"`
		MaxOpenConns    int    `mapstructure:"max_open_conns"`
		MaxIdleConns    int    `mapstructure:"max_idle_conns"`
		ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	} `mapstructure:"database"`
	Health struct {
		ProbeTimeout string `mapstructure:"probe_timeout"`
	} `mapstructure:"health"`
	Catalog struct {
		MaxLimit int `mapstructure:"max_limit"`
	} `mapstructure:"catalog"`
	Cache struct {
		Provider string `mapstructure:"provider"` // none, memory or redis
		Size     int    `mapstructure:"size"`
		TTL      string `mapstructure:"ttl"`
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log_level"`
	Seed     bool   `mapstructure:"seed"`
}

// Service names of the two deployments. Only the demo deployment seeds by default.
const (
	CatalogService = "catalog-server"
	DemoService    = "anime-pg-server"
)

const (
	defaultConnMaxLifetime = 30 * time.Minute
	defaultProbeTimeout    = 5 * time.Second
	defaultCacheTTL        = 10 * time.Minute
)

func setDefaults(v *viper.Viper, service string) {
	v.SetDefault("service", service)
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.driver", database.DriverSQLite)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "anime_db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", defaultConnMaxLifetime.String())

	v.SetDefault("health.probe_timeout", defaultProbeTimeout.String())
	v.SetDefault("catalog.max_limit", 0)

	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.size", 256)
	v.SetDefault("cache.ttl", defaultCacheTTL.String())
	v.SetDefault("cache.redis.address", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:3001"})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)

	v.SetDefault("log_level", "info")
	v.SetDefault("seed", service == DemoService)
}

// LoadConfig reads config.yaml from . or ./config when present, then applies
// APP_* environment overrides (APP_DATABASE_DSN for database.dsn).
// service names the binary and becomes the default for the service key.
func LoadConfig(service string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v, service)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DatabaseConfig maps the database section onto the pool settings. An empty
// DSN falls back to the local SQLite file.
func (c *Config) DatabaseConfig(logger zerolog.Logger) database.Config {
	cfg := database.Config{
		Driver:          c.Database.Driver,
		DSN:             c.Database.DSN,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: ParseDuration(logger, "database.conn_max_lifetime", c.Database.ConnMaxLifetime, defaultConnMaxLifetime),
	}
	if cfg.DSN == "" && (cfg.Driver == "" || cfg.Driver == database.DriverSQLite) {
		cfg.Driver = database.DriverSQLite
		cfg.DSN = database.DefaultConfig().DSN
	}
	return cfg
}

func (c *Config) ProbeTimeout(logger zerolog.Logger) time.Duration {
	return ParseDuration(logger, "health.probe_timeout", c.Health.ProbeTimeout, defaultProbeTimeout)
}

func (c *Config) CacheTTL(logger zerolog.Logger) time.Duration {
	return ParseDuration(logger, "cache.ttl", c.Cache.TTL, defaultCacheTTL)
}

// ParseDuration returns def when raw is empty, and logs a warning when raw is
// not a valid positive duration.
func ParseDuration(logger zerolog.Logger, key, raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Warn().Err(err).Str("key", key).Str("value", raw).
			Str("default", def.String()).Msg("Invalid duration, using default")
		return def
	}
	return d
}
