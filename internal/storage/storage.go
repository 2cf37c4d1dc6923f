// Package storage provides the byte-oriented key-value store the data layer
// persists its documents into. Each document lives under one fixed string key.
package storage

import "context"

// Store is an asynchronous key-value byte store. GetItem returns a nil slice
// and a nil error when the key is absent. Implementations serialize writes to
// the same key, so a later SetItem supersedes an earlier one.
type Store interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
