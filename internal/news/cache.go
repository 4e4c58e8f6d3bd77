// ABOUTME: News payload cache with a freshness window per category
// ABOUTME: Storage failures degrade to a cache miss instead of an error

package news

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/2389/newsdesk/internal/store"
)

// DefaultFreshnessWindow is how long a cached payload is served before a refetch.
const DefaultFreshnessWindow = 10 * time.Minute

// Cache serves the most recent payload per category while it is fresh.
type Cache struct {
	store  store.CacheStore
	window time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewCache creates a Cache. A non-positive window uses DefaultFreshnessWindow.
func NewCache(s store.CacheStore, window time.Duration, logger *slog.Logger) *Cache {
	if window <= 0 {
		window = DefaultFreshnessWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		store:  s,
		window: window,
		now:    time.Now,
		logger: logger.With("component", "cache"),
	}
}

// Window returns the configured freshness window.
func (c *Cache) Window() time.Duration {
	return c.window
}

// Get returns the payload for category if now - fetchedAt < window.
// A stale row, a missing row and a storage failure all report false.
func (c *Cache) Get(ctx context.Context, category string, now time.Time, window time.Duration) (string, bool) {
	p, err := c.store.GetCachedPayload(ctx, category)
	if errors.Is(err, store.ErrNotFound) {
		c.logger.Debug("cache miss", "category", category)
		return "", false
	}
	if err != nil {
		c.logger.Warn("cache read failed, treating as miss", "category", category, "error", err)
		return "", false
	}

	age := now.Sub(p.FetchedAt)
	if age >= window {
		c.logger.Debug("cache stale", "category", category, "age", age)
		return "", false
	}

	c.logger.Debug("cache hit", "category", category, "age", age)
	return p.Payload, true
}

// Put replaces the payload for category and restarts its freshness clock.
// A storage failure is logged and otherwise ignored.
func (c *Cache) Put(ctx context.Context, category, payload string, now time.Time) {
	err := c.store.UpsertCachedPayload(ctx, &store.CachedPayload{
		Category:  category,
		Payload:   payload,
		FetchedAt: now,
	})
	if err != nil {
		c.logger.Warn("cache write failed", "category", category, "error", err)
	}
}

// Fresh is Get using the cache's clock and window.
func (c *Cache) Fresh(ctx context.Context, category string) (string, bool) {
	return c.Get(ctx, category, c.now(), c.window)
}

// Store is Put using the cache's clock.
func (c *Cache) Store(ctx context.Context, category, payload string) {
	c.Put(ctx, category, payload, c.now())
}
