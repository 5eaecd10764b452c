// Package cache provides caching implementations for read-heavy listings.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	assetapp "github.com/assettrack/backend/internal/application/asset"
)

const defaultCleanupInterval = 30 * time.Second

// InMemoryDocumentListingCache implements DocumentListingCache using
// in-process storage. Suitable for single-instance deployments; distributed
// deployments should use the Redis implementation so invalidation is shared.
type InMemoryDocumentListingCache struct {
	entries sync.Map // map[uuid.UUID]*listingEntry
	ttl     time.Duration
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type listingEntry struct {
	docs      []assetapp.DocumentResponse
	expiresAt time.Time
}

func (e *listingEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryDocumentListingCacheOption configures the cache
type InMemoryDocumentListingCacheOption func(*InMemoryDocumentListingCache)

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryDocumentListingCacheOption {
	return func(c *InMemoryDocumentListingCache) {
		c.logger = logger
	}
}

// NewInMemoryDocumentListingCache creates a new in-memory listing cache with
// the given TTL. A background goroutine evicts expired entries; call Stop to
// shut it down.
func NewInMemoryDocumentListingCache(ttl time.Duration, opts ...InMemoryDocumentListingCacheOption) *InMemoryDocumentListingCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	cache := &InMemoryDocumentListingCache{
		ttl:    ttl,
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// Get returns the cached listing for an asset, or a miss
func (c *InMemoryDocumentListingCache) Get(_ context.Context, assetID uuid.UUID) ([]assetapp.DocumentResponse, bool, error) {
	if value, ok := c.entries.Load(assetID); ok {
		entry := value.(*listingEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return entry.docs, true, nil
		}
		c.entries.Delete(assetID)
	}

	atomic.AddInt64(&c.misses, 1)
	return nil, false, nil
}

// Set stores the listing for an asset
func (c *InMemoryDocumentListingCache) Set(_ context.Context, assetID uuid.UUID, docs []assetapp.DocumentResponse) error {
	c.entries.Store(assetID, &listingEntry{
		docs:      docs,
		expiresAt: time.Now().Add(c.ttl),
	})
	return nil
}

// Invalidate drops the cached listing for an asset
func (c *InMemoryDocumentListingCache) Invalidate(_ context.Context, assetID uuid.UUID) error {
	c.entries.Delete(assetID)
	return nil
}

// Stats returns hit/miss counters for monitoring
func (c *InMemoryDocumentListingCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Stop terminates the background cleanup goroutine
func (c *InMemoryDocumentListingCache) Stop() {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
}

func (c *InMemoryDocumentListingCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.entries.Range(func(key, value interface{}) bool {
				if value.(*listingEntry).isExpired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}

// Ensure InMemoryDocumentListingCache implements DocumentListingCache
var _ assetapp.DocumentListingCache = (*InMemoryDocumentListingCache)(nil)
