package cache

import (
	"armory/internal/config"
	"armory/internal/logger"
)

// NewStore returns a RedisStore when Redis is enabled and reachable, and a
// MemoryStore otherwise.
func NewStore(cfg *config.Config) Store {
	log := logger.Named("cache")

	if !cfg.RedisEnabled {
		log.Info("Redis disabled, using in-memory read cache")
		return NewMemoryStore()
	}

	store, err := NewRedisStore(RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warnw("Redis unavailable, falling back to in-memory read cache. "+
			"Cached reads are not shared across instances.", "error", err)
		return NewMemoryStore()
	}

	log.Infow("using Redis read cache", "host", cfg.RedisHost, "port", cfg.RedisPort)
	return store
}
