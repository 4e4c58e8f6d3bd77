// ABOUTME: Tests for the newsdesk subcommands against an in-memory store
// ABOUTME: Credentials are injected so no prompt is involved

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/newsdesk/internal/auth"
	"github.com/2389/newsdesk/internal/config"
	"github.com/2389/newsdesk/internal/store"
)

const samplePayload = `{"status":"ok","articles":[
	{"title":"Go 1.26 released","description":"Faster builds","url":"https://example.com/go"},
	{"title":"SQLite turns 26","description":null,"url":null}
]}`

type testApp struct {
	*app
	buf  *bytes.Buffer
	mock *store.MockStore
}

func newTestApp(t *testing.T, stdin string) *testApp {
	t.Helper()
	color.NoColor = true

	cfg := config.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.NewMockStore()
	out := &bytes.Buffer{}

	a, err := newAppWithStore(cfg, logger, s, strings.NewReader(stdin), out)
	require.NoError(t, err)
	a.credentials = func() (string, string, error) { return "alice", "s3cret", nil }

	return &testApp{app: a, buf: out, mock: s}
}

func (ta *testApp) run(t *testing.T, cmd string, args ...string) error {
	t.Helper()
	ta.buf.Reset()
	return ta.dispatch(context.Background(), cmd, args)
}

func TestRegisterAndLogin(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.run(t, "register"))
	assert.Contains(t, ta.buf.String(), "Registration successful")

	require.NoError(t, ta.run(t, "login"))
	assert.Contains(t, ta.buf.String(), "Welcome, alice!")
}

func TestRegisterDuplicate(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run(t, "register"))

	err := ta.run(t, "register")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestLoginWrongPassword(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run(t, "register"))

	ta.credentials = func() (string, string, error) { return "alice", "wrong", nil }
	err := ta.run(t, "login")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestCommandsRequireLogin(t *testing.T) {
	ta := newTestApp(t, "")

	for _, cmd := range []string{"saved", "headlines", "articles", "favorite"} {
		t.Run(cmd, func(t *testing.T) {
			err := ta.run(t, cmd)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestCredentialsError(t *testing.T) {
	ta := newTestApp(t, "")
	want := errors.New("no tty")
	ta.credentials = func() (string, string, error) { return "", "", want }

	assert.ErrorIs(t, ta.run(t, "login"), want)
}

func TestUnknownCommand(t *testing.T) {
	ta := newTestApp(t, "")
	err := ta.run(t, "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestHeadlinesFromStdinThenCache(t *testing.T) {
	ta := newTestApp(t, samplePayload)
	require.NoError(t, ta.run(t, "register"))

	require.NoError(t, ta.run(t, "headlines", "Technology", "--from", "-"))
	assert.Contains(t, ta.buf.String(), "Go 1.26 released")

	// The second call is served from the cache; stdin is already drained.
	require.NoError(t, ta.run(t, "headlines", "technology"))
	assert.Contains(t, ta.buf.String(), "Go 1.26 released")
}

func TestHeadlinesFromFile(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run(t, "register"))

	path := filepath.Join(t.TempDir(), "tech.json")
	require.NoError(t, os.WriteFile(path, []byte(samplePayload), 0600))

	require.NoError(t, ta.run(t, "headlines", "--from="+path, "tech"))
	assert.Contains(t, ta.buf.String(), "SQLite turns 26")
}

func TestHeadlinesErrorMarkerNotCached(t *testing.T) {
	ta := newTestApp(t, "Error: upstream unavailable")
	require.NoError(t, ta.run(t, "register"))

	require.NoError(t, ta.run(t, "headlines", "sports", "--from", "-"))
	assert.Contains(t, ta.buf.String(), "Error: upstream unavailable")

	_, err := ta.mock.GetCachedPayload(context.Background(), "sports")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHeadlinesArguments(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run(t, "register"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing category", nil, "usage"},
		{"missing from value", []string{"tech", "--from"}, "requires a value"},
		{"unknown flag", []string{"tech", "--verbose"}, "unknown flag"},
		{"extra argument", []string{"tech", "sports"}, "unexpected argument"},
		{"cache miss without source", []string{"tech"}, "no fetcher configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ta.run(t, "headlines", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestArticlesListsCachedPayload(t *testing.T) {
	ta := newTestApp(t, samplePayload)
	require.NoError(t, ta.run(t, "register"))
	require.NoError(t, ta.run(t, "headlines", "tech", "--from", "-"))

	require.NoError(t, ta.run(t, "articles", "TECH"))
	out := ta.buf.String()
	assert.Contains(t, out, "1. Go 1.26 released")
	assert.Contains(t, out, "2. SQLite turns 26")
}

func TestArticlesWithoutCache(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run(t, "register"))

	err := ta.run(t, "articles", "tech")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fresh headlines")
}

func TestFavoriteAndSaved(t *testing.T) {
	ta := newTestApp(t, samplePayload)
	require.NoError(t, ta.run(t, "register"))

	require.NoError(t, ta.run(t, "saved"))
	assert.Contains(t, ta.buf.String(), "You have no saved articles.")

	require.NoError(t, ta.run(t, "headlines", "tech", "--from", "-"))

	require.NoError(t, ta.run(t, "favorite", "tech", "2"))
	assert.Contains(t, ta.buf.String(), "Article saved: SQLite turns 26")

	require.NoError(t, ta.run(t, "favorite", "tech", "2"))
	assert.Contains(t, ta.buf.String(), "already in your favorites")

	require.NoError(t, ta.run(t, "favorite", "tech", "1"))

	require.NoError(t, ta.run(t, "saved"))
	lines := strings.Split(strings.TrimSpace(ta.buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "Go 1.26 released")
	assert.Contains(t, lines[2], "SQLite turns 26")
	assert.Contains(t, lines[2], "#")
}

func TestFavoriteArguments(t *testing.T) {
	ta := newTestApp(t, samplePayload)
	require.NoError(t, ta.run(t, "register"))
	require.NoError(t, ta.run(t, "headlines", "tech", "--from", "-"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing index", []string{"tech"}, "usage"},
		{"not a number", []string{"tech", "two"}, "invalid article number"},
		{"zero", []string{"tech", "0"}, "out of range"},
		{"too large", []string{"tech", "3"}, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ta.run(t, "favorite", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStorageFailureDuringLogin(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run(t, "register"))

	ta.mock.SetErr(errors.New("disk I/O error"))
	err := ta.run(t, "saved")
	assert.ErrorIs(t, err, auth.ErrStorage)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestNewAppWithSQLite(t *testing.T) {
	color.NoColor = true
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "data", "newsdesk.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var buf bytes.Buffer
	a, err := newApp(cfg, logger, strings.NewReader(samplePayload), &buf)
	require.NoError(t, err)
	a.credentials = func() (string, string, error) { return "bob", "hunter2", nil }

	ctx := context.Background()
	require.NoError(t, a.dispatch(ctx, "register", nil))
	require.NoError(t, a.dispatch(ctx, "headlines", []string{"world", "--from", "-"}))
	require.NoError(t, a.dispatch(ctx, "favorite", []string{"world", "1"}))
	require.NoError(t, a.Close())

	// A second invocation sees the account, the cache and the favourite.
	buf.Reset()
	a, err = newApp(cfg, logger, strings.NewReader(""), &buf)
	require.NoError(t, err)
	defer a.Close()
	a.credentials = func() (string, string, error) { return "bob", "hunter2", nil }

	require.NoError(t, a.dispatch(ctx, "articles", []string{"world"}))
	assert.Contains(t, buf.String(), "Go 1.26 released")

	buf.Reset()
	require.NoError(t, a.dispatch(ctx, "saved", nil))
	assert.Contains(t, buf.String(), "Go 1.26 released")
}

func TestNewHasher(t *testing.T) {
	_, err := newHasher(config.AuthConfig{Hasher: "md5"})
	assert.Error(t, err)

	h, err := newHasher(config.AuthConfig{Hasher: "bcrypt", BcryptCost: 4})
	require.NoError(t, err)
	record, err := h.Generate("pw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(record, "$2"))
	assert.True(t, h.Verify("pw", record))
}
