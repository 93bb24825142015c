package cache

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

const (
	ProviderNone   = "none"
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

// ProviderConfig holds the configuration needed to create a cache instance.
type ProviderConfig struct {
	// Size is the maximum number of entries for LRU caches.
	Size int

	// TTL is the time-to-live for cache entries.
	TTL time.Duration

	// Logger receives error reports from cache operations.
	Logger zerolog.Logger

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// Group labels the hit/miss metrics. When non-empty the cache is wrapped with instrumentation.
	Group string
}

// Provider is a constructor function that creates a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var providers = map[string]Provider{
	ProviderMemory: newMemoryCache,
	ProviderRedis:  newRedisCache,
}

// New creates a new Cache using the named provider. The "none" provider yields a nil Cache,
// which callers treat as caching disabled.
func New(name string, cfg ProviderConfig) (Cache, error) {
	if name == ProviderNone || name == "" {
		return nil, nil
	}

	p, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Group == "" {
		return inner, nil
	}
	return newInstrumentedCache(inner, cfg.Group), nil
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
