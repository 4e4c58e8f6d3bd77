// ABOUTME: Saved article table with (title, description) uniqueness
// ABOUTME: Duplicate saves are reported as not-inserted rather than as errors

package store

import (
	"context"
	"fmt"
)

// SaveArticle inserts a new saved article.
// The uniqueness check runs inside the insert, so concurrent saves of the
// same pair cannot both succeed. On insert a.ID is set to the new row id.
func (s *SQLiteStore) SaveArticle(ctx context.Context, a *SavedArticle) (bool, error) {
	query := `
		INSERT INTO saved_articles (title, description, url, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(title, description) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query, a.Title, a.Description, a.URL, formatTime(a.SavedAt))
	if err != nil {
		return false, fmt.Errorf("inserting saved article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		s.logger.Debug("article already saved", "title", a.Title)
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("getting saved article id: %w", err)
	}
	a.ID = id

	s.logger.Info("saved article", "id", id, "title", a.Title)
	return true, nil
}

// ListSavedArticles returns all saved articles, newest insertion first.
// An empty table yields an empty, non-nil slice.
func (s *SQLiteStore) ListSavedArticles(ctx context.Context) ([]*SavedArticle, error) {
	query := `
		SELECT id, title, description, url, saved_at
		FROM saved_articles
		ORDER BY id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying saved articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := []*SavedArticle{}
	for rows.Next() {
		var a SavedArticle
		var savedAt timestamp
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.URL, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning saved article: %w", err)
		}
		a.SavedAt = savedAt.Time
		articles = append(articles, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating saved articles: %w", err)
	}

	return articles, nil
}
