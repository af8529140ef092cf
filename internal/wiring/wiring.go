// Package wiring assembles the engine and its adapters from a Config.
package wiring

import (
	"fmt"

	"github.com/rs/zerolog"

	"iris/internal/adapters/ephemeris"
	"iris/internal/adapters/sqlite"
	"iris/internal/application"
	"iris/internal/config"
	"iris/internal/ports"
)

// Components are the shared pieces every binary runs on
type Components struct {
	Engine *application.Engine
	// Cache is nil when caching is disabled
	Cache *ephemeris.CachedResolver
	// History is nil when history is disabled
	History ports.HistoryRepository

	store *sqlite.HistoryStore
}

// Build creates the resolver, optional cache and optional history store
func Build(cfg config.Config, logger zerolog.Logger) (*Components, error) {
	c := &Components{}

	var resolver ports.PositionResolver = ephemeris.NewResolver()
	if cfg.CacheSize > 0 {
		c.Cache = ephemeris.NewCachedResolver(resolver, cfg.CacheSize)
		resolver = c.Cache
	}
	c.Engine = application.NewEngine(resolver)

	if cfg.HistoryEnabled {
		store := sqlite.NewHistoryStore()
		if err := store.Open(cfg.HistoryPath); err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		c.store = store
		c.History = store
		logger.Debug().Str("path", store.Path()).Msg("history store opened")
	}

	start, end := c.Engine.Coverage()
	logger.Debug().
		Str("resolver", c.Engine.ResolverName()).
		Time("coverage_start", start).
		Time("coverage_end", end).
		Int("cache_size", cfg.CacheSize).
		Msg("engine ready")

	return c, nil
}

// Close releases the history store, if any
func (c *Components) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
