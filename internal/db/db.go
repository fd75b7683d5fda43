package db

import (
	"context"
	"time"
)

// Store is the abstract key-value backend the record layer consumes.
// Concrete implementations (redis, memory) are selected at startup; the
// core filter and parse logic never references a backend directly.
type Store interface {
	Pinger
	KVStore
	Name() string
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides the key-value operations the record repository needs.
type KVStore interface {
	// Get returns the value at key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// GetMulti fetches several keys in one round-trip. The result is
	// aligned with keys; entries for missing keys are nil.
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	// SetNX stores the value only if the key is absent. Returns false
	// when the key already existed. This is the atomicity the
	// content-addressed insert relies on.
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	// Del removes a key. Returns false when the key was absent.
	Del(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	// Scan returns all keys matching a glob-style pattern.
	Scan(ctx context.Context, pattern string) ([]string, error)
}
