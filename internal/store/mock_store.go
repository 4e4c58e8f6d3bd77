// ABOUTME: Mock Store implementation for testing
// ABOUTME: Allows tests to run without SQLite and to inject storage failures

package store

import (
	"context"
	"sync"
)

// MockStore is an in-memory Store implementation for testing.
// Setting Err makes every operation fail with it.
type MockStore struct {
	mu       sync.RWMutex
	payloads map[string]*CachedPayload // keyed by category
	articles []*SavedArticle           // insertion order
	users    map[string]*User          // keyed by username
	nextID   int64

	Err error
}

// Ensure MockStore implements Store.
var _ Store = (*MockStore)(nil)

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		payloads: make(map[string]*CachedPayload),
		users:    make(map[string]*User),
	}
}

// SetErr replaces the injected failure; nil restores normal behaviour.
func (m *MockStore) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// UpsertCachedPayload stores a copy of p keyed by category.
func (m *MockStore) UpsertCachedPayload(ctx context.Context, p *CachedPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	c := *p
	c.FetchedAt = c.FetchedAt.UTC()
	m.payloads[c.Category] = &c
	return nil
}

// GetCachedPayload returns a copy of the payload cached for category.
func (m *MockStore) GetCachedPayload(ctx context.Context, category string) (*CachedPayload, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.payloads[category]
	if !ok {
		return nil, ErrNotFound
	}
	result := *p
	return &result, nil
}

// SaveArticle appends a unless the (title, description) pair is present.
func (m *MockStore) SaveArticle(ctx context.Context, a *SavedArticle) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}

	for _, existing := range m.articles {
		if existing.Title == a.Title && existing.Description == a.Description {
			return false, nil
		}
	}

	m.nextID++
	a.ID = m.nextID
	c := *a
	m.articles = append(m.articles, &c)
	return true, nil
}

// ListSavedArticles returns copies of all articles, newest first.
func (m *MockStore) ListSavedArticles(ctx context.Context) ([]*SavedArticle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]*SavedArticle, 0, len(m.articles))
	for i := len(m.articles) - 1; i >= 0; i-- {
		c := *m.articles[i]
		result = append(result, &c)
	}
	return result, nil
}

// CreateUser stores u unless the username is taken.
func (m *MockStore) CreateUser(ctx context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.users[u.Username]; ok {
		return ErrUsernameExists
	}

	m.nextID++
	u.ID = m.nextID
	c := *u
	m.users[c.Username] = &c
	return nil
}

// GetUserByUsername returns a copy of the named user.
func (m *MockStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	u, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	result := *u
	return &result, nil
}

// Close is a no-op.
func (m *MockStore) Close() error {
	return nil
}
