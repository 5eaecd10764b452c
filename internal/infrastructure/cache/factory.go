package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	assetapp "github.com/assettrack/backend/internal/application/asset"
	"github.com/assettrack/backend/internal/infrastructure/config"
)

// NewDocumentListingCache creates a listing cache based on configuration.
// The redis backend requires a connected client; the memory backend ignores it.
func NewDocumentListingCache(cfg config.CacheConfig, client *redis.Client, logger *zap.Logger) (assetapp.DocumentListingCache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("cache backend %q requires a redis client", cfg.Backend)
		}
		logger.Info("using Redis document listing cache",
			zap.Duration("ttl", cfg.DocumentListingTTL))
		return NewRedisDocumentListingCache(client, cfg.DocumentListingTTL), nil
	case "memory", "":
		logger.Info("using in-memory document listing cache",
			zap.Duration("ttl", cfg.DocumentListingTTL))
		return NewInMemoryDocumentListingCache(cfg.DocumentListingTTL, WithInMemoryLogger(logger)), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
