// Package auth registers newsdesk users and verifies their logins.
//
// Passwords are turned into credential records by a passwords.Hasher and
// stored through store.UserStore; this package never sees the record format.
//
// # Errors
//
//   - ErrAlreadyExists: Register was given a username that is taken
//   - ErrInvalidCredentials: unknown username or wrong password (merged on purpose)
//   - ErrEmptyCredentials: empty username or password
//   - ErrStorage: the user table could not be read or written
//
// Use errors.Is to match them; ErrStorage carries the underlying cause in its message.
package auth
