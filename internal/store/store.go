// ABOUTME: Store interfaces and data types for newsdesk persistence
// ABOUTME: Defines CachedPayload, SavedArticle, User and the per-table store interfaces

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when trying to create a user with an existing username.
var ErrUsernameExists = errors.New("username already exists")

// CachedPayload is the most recent upstream payload fetched for a category.
// There is at most one row per category.
type CachedPayload struct {
	Category  string
	Payload   string // opaque serialized document, never inspected by the store
	FetchedAt time.Time
}

// SavedArticle is an article the user chose to keep.
// Title and Description together are unique; URL is not part of the key.
type SavedArticle struct {
	ID          int64
	Title       string
	Description string
	URL         string
	SavedAt     time.Time
}

// User is a registered account.
type User struct {
	ID           int64
	Username     string // unique, case-sensitive
	PasswordHash string // credential record produced by the passwords package
}

// CacheStore persists news payloads keyed by category.
type CacheStore interface {
	// UpsertCachedPayload replaces any row for p.Category.
	UpsertCachedPayload(ctx context.Context, p *CachedPayload) error
	// GetCachedPayload returns ErrNotFound when no row exists for category.
	GetCachedPayload(ctx context.Context, category string) (*CachedPayload, error)
}

// ArticleStore persists saved articles.
type ArticleStore interface {
	// SaveArticle inserts a and reports whether a new row was created.
	// A duplicate (title, description) pair returns false and a nil error.
	SaveArticle(ctx context.Context, a *SavedArticle) (bool, error)
	// ListSavedArticles returns every saved article, most recently inserted first.
	ListSavedArticles(ctx context.Context) ([]*SavedArticle, error)
}

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser returns ErrUsernameExists when the username is taken.
	CreateUser(ctx context.Context, u *User) error
	// GetUserByUsername returns ErrNotFound for unknown usernames.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// Store is the full persistence surface backed by a single database.
type Store interface {
	CacheStore
	ArticleStore
	UserStore
	Close() error
}
