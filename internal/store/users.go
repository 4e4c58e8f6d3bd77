// ABOUTME: User account table keyed by a unique, case-sensitive username
// ABOUTME: Accounts are created once and never updated

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateUser creates a new user and sets u.ID.
// Returns ErrUsernameExists if the username is already taken; the UNIQUE
// constraint makes the check and the insert a single step.
func (s *SQLiteStore) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, u.Username, u.PasswordHash)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUsernameExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting user id: %w", err)
	}
	u.ID = id

	s.logger.Info("created user", "id", u.ID, "username", u.Username)
	return nil
}

// GetUserByUsername retrieves a user by exact username.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, password_hash
		FROM users
		WHERE username = ?
	`

	var u User
	err := s.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by username: %w", err)
	}

	return &u, nil
}
