// ABOUTME: Headlines service: cache first, upstream fetch on a miss
// ABOUTME: Only successful payloads are cached; error markers pass through uncached

package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrNoCategory is returned when Headlines is called without a category.
var ErrNoCategory = errors.New("category required")

// errorMarker prefixes payloads the upstream returns in place of a document.
const errorMarker = "Error"

// Fetcher retrieves the current payload for a category from upstream.
// A payload starting with "Error" is treated as a failed fetch.
type Fetcher interface {
	Fetch(ctx context.Context, category string) (string, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, category string) (string, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, category string) (string, error) {
	return f(ctx, category)
}

// Service answers headline requests from the cache, falling back to a Fetcher.
type Service struct {
	cache   *Cache
	fetcher Fetcher
	logger  *slog.Logger
}

// NewService creates a Service.
func NewService(cache *Cache, fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cache:   cache,
		fetcher: fetcher,
		logger:  logger.With("component", "headlines"),
	}
}

// NormalizeCategory trims and lower-cases a category name.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// IsErrorMarker reports whether payload is an upstream error marker.
func IsErrorMarker(payload string) bool {
	return strings.HasPrefix(payload, errorMarker)
}

// Headlines returns the payload for category, from the cache when fresh.
// On a miss the fetcher is called and a successful result is cached. An
// error marker is returned to the caller as-is but never cached.
func (s *Service) Headlines(ctx context.Context, category string) (string, error) {
	category = NormalizeCategory(category)
	if category == "" {
		return "", ErrNoCategory
	}

	if payload, ok := s.cache.Fresh(ctx, category); ok {
		return payload, nil
	}

	if s.fetcher == nil {
		return "", fmt.Errorf("no cached headlines for %q and no fetcher configured", category)
	}

	payload, err := s.fetcher.Fetch(ctx, category)
	if err != nil {
		s.logger.Warn("fetch failed", "category", category, "error", err)
		return "", fmt.Errorf("fetching %s headlines: %w", category, err)
	}

	if IsErrorMarker(payload) {
		s.logger.Warn("upstream returned error marker", "category", category)
		return payload, nil
	}

	s.cache.Store(ctx, category, payload)
	s.logger.Info("fetched headlines", "category", category, "bytes", len(payload))
	return payload, nil
}
