// Package storage is the client's durable key/value store, the terminal
// counterpart of browser local storage. The only durable piece of session
// state, the bearer token, lives here under TokenKey.
package storage

import "context"

// TokenKey is the fixed name the bearer token is stored under. Absence of
// the key means the client is unauthenticated.
const TokenKey = "token"

type Repository interface {
	// Get returns the stored value, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
