package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	assetapp "github.com/assettrack/backend/internal/application/asset"
)

const documentListingKeyPrefix = "cache:documents:"

// RedisDocumentListingCache implements DocumentListingCache using Redis,
// so cache invalidation is shared across instances
type RedisDocumentListingCache struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// NewRedisDocumentListingCache creates a Redis-backed listing cache with an
// existing client
func NewRedisDocumentListingCache(client *redis.Client, ttl time.Duration) *RedisDocumentListingCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisDocumentListingCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: documentListingKeyPrefix,
	}
}

func (c *RedisDocumentListingCache) key(assetID uuid.UUID) string {
	return c.keyPrefix + assetID.String()
}

// Get returns the cached listing for an asset, or a miss
func (c *RedisDocumentListingCache) Get(ctx context.Context, assetID uuid.UUID) ([]assetapp.DocumentResponse, bool, error) {
	payload, err := c.client.Get(ctx, c.key(assetID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read document listing cache: %w", err)
	}

	var docs []assetapp.DocumentResponse
	if err := json.Unmarshal(payload, &docs); err != nil {
		// Treat a corrupt entry as a miss and drop it
		_ = c.client.Del(ctx, c.key(assetID)).Err()
		return nil, false, nil
	}

	return docs, true, nil
}

// Set stores the listing for an asset with the configured TTL
func (c *RedisDocumentListingCache) Set(ctx context.Context, assetID uuid.UUID, docs []assetapp.DocumentResponse) error {
	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode document listing: %w", err)
	}

	if err := c.client.Set(ctx, c.key(assetID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write document listing cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing for an asset
func (c *RedisDocumentListingCache) Invalidate(ctx context.Context, assetID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(assetID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate document listing cache: %w", err)
	}
	return nil
}

// Ensure RedisDocumentListingCache implements DocumentListingCache
var _ assetapp.DocumentListingCache = (*RedisDocumentListingCache)(nil)
