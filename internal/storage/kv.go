// Package storage persists the ledger. The durable area is a small
// key-value table: the whole ledger lives under one key as a serialized
// JSON array, mirroring how a browser wallet keeps its data in local
// storage. Backends: SQLite for real use, an in-memory map for tests.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the minimal persistent key-value surface the ledger needs.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	Close() error
}
