// ABOUTME: News payload cache table, one row per category
// ABOUTME: Upserts replace the payload and reset fetched_at

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertCachedPayload stores p, replacing any existing row for the same category.
func (s *SQLiteStore) UpsertCachedPayload(ctx context.Context, p *CachedPayload) error {
	query := `
		INSERT INTO news_cache (category, json_data, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(category) DO UPDATE SET
			json_data = excluded.json_data,
			fetched_at = excluded.fetched_at
	`

	_, err := s.db.ExecContext(ctx, query, p.Category, p.Payload, formatTime(p.FetchedAt))
	if err != nil {
		return fmt.Errorf("upserting cached payload: %w", err)
	}

	s.logger.Debug("cached payload", "category", p.Category, "bytes", len(p.Payload))
	return nil
}

// GetCachedPayload retrieves the cached payload for category, fresh or not.
// Returns ErrNotFound if nothing was ever cached for it.
func (s *SQLiteStore) GetCachedPayload(ctx context.Context, category string) (*CachedPayload, error) {
	query := `
		SELECT category, json_data, fetched_at
		FROM news_cache
		WHERE category = ?
	`

	var p CachedPayload
	var fetchedAt timestamp

	err := s.db.QueryRowContext(ctx, query, category).Scan(&p.Category, &p.Payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying cached payload: %w", err)
	}

	p.FetchedAt = fetchedAt.Time
	return &p, nil
}
