// ABOUTME: Wires config, store and core components for one CLI invocation
// ABOUTME: Every component shares the single store handle opened here

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/2389/newsdesk/internal/auth"
	"github.com/2389/newsdesk/internal/config"
	"github.com/2389/newsdesk/internal/news"
	"github.com/2389/newsdesk/internal/passwords"
	"github.com/2389/newsdesk/internal/store"
)

type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     store.Store
	creds     *auth.Credentials
	cache     *news.Cache
	favorites *news.Favorites

	in  io.Reader
	out io.Writer

	// credentials supplies the username and password for commands that need a login.
	credentials func() (string, string, error)
}

func newApp(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) (*app, error) {
	s, err := store.NewSQLiteStoreWithLogger(cfg.Database.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	a, err := newAppWithStore(cfg, logger, s, in, out)
	if err != nil {
		s.Close()
		return nil, err
	}
	return a, nil
}

func newAppWithStore(cfg *config.Config, logger *slog.Logger, s store.Store, in io.Reader, out io.Writer) (*app, error) {
	hasher, err := newHasher(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:         cfg,
		logger:      logger,
		store:       s,
		creds:       auth.NewCredentials(s, hasher, logger),
		cache:       news.NewCache(s, cfg.Cache.FreshnessWindow, logger),
		favorites:   news.NewFavorites(s, logger),
		in:          in,
		out:         out,
		credentials: promptCredentials,
	}, nil
}

func newHasher(cfg config.AuthConfig) (passwords.Hasher, error) {
	hasher, err := passwords.New(cfg.Hasher)
	if err != nil {
		return nil, err
	}
	if cfg.Hasher == "bcrypt" && cfg.BcryptCost != 0 {
		hasher = passwords.Multi{Primary: passwords.Bcrypt{Cost: cfg.BcryptCost}}
	}
	return hasher, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
