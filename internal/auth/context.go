// ABOUTME: Authenticated account carried through context.Context
// ABOUTME: Provides WithAccount/FromContext for commands that require a login

package auth

import (
	"context"
)

// accountContextKey is the key type for storing Account in context.Context.
type accountContextKey struct{}

// WithAccount returns a new context with the Account attached.
func WithAccount(ctx context.Context, account *Account) context.Context {
	return context.WithValue(ctx, accountContextKey{}, account)
}

// FromContext retrieves the Account from the context, returning nil if not present.
func FromContext(ctx context.Context) *Account {
	account, ok := ctx.Value(accountContextKey{}).(*Account)
	if !ok {
		return nil
	}
	return account
}

// MustFromContext retrieves the Account from the context, panicking if not present.
func MustFromContext(ctx context.Context) *Account {
	account := FromContext(ctx)
	if account == nil {
		panic("auth: Account not found in context")
	}
	return account
}
