// ABOUTME: Favourite articles saved by the user, unique on title and description
// ABOUTME: Duplicate saves and storage failures both report not-saved

package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/2389/newsdesk/internal/store"
)

// ErrStorage is returned when saved articles cannot be read.
var ErrStorage = errors.New("article storage unavailable")

// Favorites records the articles a user chose to keep.
type Favorites struct {
	store  store.ArticleStore
	now    func() time.Time
	logger *slog.Logger
}

// NewFavorites creates a Favorites over s.
func NewFavorites(s store.ArticleStore, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = slog.Default()
	}
	return &Favorites{
		store:  s,
		now:    time.Now,
		logger: logger.With("component", "favorites"),
	}
}

// Save stores the article and reports whether a new row was created.
// False means the (title, description) pair was already saved, or the
// write failed; neither is surfaced as an error.
func (f *Favorites) Save(ctx context.Context, title, description, url string) bool {
	ok, err := f.store.SaveArticle(ctx, &store.SavedArticle{
		Title:       title,
		Description: description,
		URL:         url,
		SavedAt:     f.now(),
	})
	if err != nil {
		f.logger.Warn("saving article failed", "title", title, "error", err)
		return false
	}
	return ok
}

// SaveArticle is Save for an extracted Article.
func (f *Favorites) SaveArticle(ctx context.Context, a Article) bool {
	return f.Save(ctx, a.Title, a.Description, a.URL)
}

// ListAll returns every saved article, most recently saved first.
// No saved articles is an empty slice, not an error.
func (f *Favorites) ListAll(ctx context.Context) ([]*store.SavedArticle, error) {
	articles, err := f.store.ListSavedArticles(ctx)
	if err != nil {
		f.logger.Error("listing saved articles failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if articles == nil {
		articles = []*store.SavedArticle{}
	}
	return articles, nil
}
