// Package credentials persists the merchant credential between sessions.
// It is the terminal counterpart of a browser cookie: a tiny key/value
// table in the local sqlite store.
package credentials

import "context"

// KeyAPIKey is the store key under which the gateway API key lives.
const KeyAPIKey = "api_key"

type Repository interface {
	// Get returns the value for key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	// Clear wipes the whole store (logout).
	Clear(ctx context.Context) error
}
