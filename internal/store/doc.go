// Package store provides persistent storage for newsdesk using SQLite.
//
// # Architecture
//
// The store package exposes one narrow interface per table:
//
//   - CacheStore: the latest upstream payload per news category
//   - ArticleStore: articles the user saved, unique on (title, description)
//   - UserStore: registered accounts and their credential records
//
// SQLiteStore implements all of them over a single database handle, so the
// caller opens one store and hands it to every component that needs it.
//
// # SQLite Configuration
//
// The store holds exactly one open connection, which serializes every
// operation, and sets:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA busy_timeout=5000;
//
// Uniqueness is enforced by the schema itself (UNIQUE constraints with
// ON CONFLICT clauses), never by a separate read before the write.
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: requested entity does not exist
//   - ErrUsernameExists: a user with that username is already registered
//
// A duplicate saved article is not an error: SaveArticle reports false.
//
// # Testing
//
// Use NewMockStore() for unit tests; set its Err field to simulate an
// unavailable database.
//
// Use NewSQLiteStore(":memory:") or a path under t.TempDir() for tests
// against real SQLite.
package store
