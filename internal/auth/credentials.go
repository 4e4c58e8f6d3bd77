// ABOUTME: Credential store for registering users and verifying logins
// ABOUTME: Unknown users and wrong passwords fail with the same error

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/2389/newsdesk/internal/passwords"
	"github.com/2389/newsdesk/internal/store"
)

// ErrAlreadyExists is returned by Register when the username is taken.
var ErrAlreadyExists = errors.New("username already exists")

// ErrInvalidCredentials is returned by Authenticate for an unknown username
// or a wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrEmptyCredentials is returned when the username or password is empty.
var ErrEmptyCredentials = errors.New("username and password required")

// ErrStorage wraps any other persistence failure.
var ErrStorage = errors.New("credential storage unavailable")

// dummyPassword seeds the record verified against for unknown usernames.
// The verification result is always discarded.
const dummyPassword = "newsdesk-timing-equalizer"

// Account is an authenticated user.
type Account struct {
	ID       int64
	Username string
}

// Credentials registers and authenticates users.
type Credentials struct {
	users  store.UserStore
	hasher passwords.Hasher
	logger *slog.Logger

	// dummy is checked when the username does not exist so both
	// failure paths cost one hash verification.
	dummy string
}

// NewCredentials creates a Credentials over users. A nil hasher uses the
// default SHA-256 records; a nil logger uses slog.Default().
func NewCredentials(users store.UserStore, hasher passwords.Hasher, logger *slog.Logger) *Credentials {
	if hasher == nil {
		hasher = passwords.Multi{Primary: passwords.SaltedSHA256{}}
	}
	if logger == nil {
		logger = slog.Default()
	}
	dummy, err := hasher.Generate(dummyPassword)
	if err != nil {
		dummy = passwords.Generate(dummyPassword)
	}
	return &Credentials{
		users:  users,
		hasher: hasher,
		logger: logger.With("component", "auth"),
		dummy:  dummy,
	}
}

// Register creates an account for username.
func (c *Credentials) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	record, err := c.hasher.Generate(password)
	if err != nil {
		return fmt.Errorf("generating credential record: %w", err)
	}

	err = c.users.CreateUser(ctx, &store.User{Username: username, PasswordHash: record})
	if errors.Is(err, store.ErrUsernameExists) {
		c.logger.Info("registration rejected", "username", username, "reason", "exists")
		return ErrAlreadyExists
	}
	if err != nil {
		c.logger.Error("registration failed", "username", username, "error", err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	c.logger.Info("registered user", "username", username)
	return nil
}

// Authenticate verifies password for username and returns the account.
func (c *Credentials) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	user, err := c.users.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		c.hasher.Verify(password, c.dummy)
		c.logger.Info("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		c.logger.Error("looking up user failed", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if !c.hasher.Verify(password, user.PasswordHash) {
		c.logger.Info("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	c.logger.Info("login succeeded", "username", username)
	return &Account{ID: user.ID, Username: user.Username}, nil
}
