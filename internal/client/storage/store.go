// Package storage provides the small key-value stores the client persists
// its trust state into: a durable one that survives restarts (SQLite) and an
// ephemeral one scoped to the current process. Both are injected as the same
// Store capability so the session manager stays testable without a real
// backing file.
package storage

import "context"

// Store is a flat string key-value store. Get returns ("", nil) for a key
// that is not present; absence is not an error. SetMany writes all pairs
// atomically: either every key is updated or none is.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
