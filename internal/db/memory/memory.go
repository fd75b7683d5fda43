// Package memory provides a mutex-guarded map implementation of db.Store.
// It is the fallback backend when the configured database is unreachable,
// and the default for local development and tests.
package memory

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store keeps all keys in process memory. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Name identifies the backend for the health report.
func (s *Store) Name() string { return "memory" }

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// WaitForReady returns immediately; memory is always ready.
func (s *Store) WaitForReady(_ context.Context, _ time.Duration) error { return nil }

// Get returns a copy of the value at key, or db.ErrKeyNotFound.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// GetMulti fetches several keys; entries for missing keys are nil.
func (s *Store) GetMulti(_ context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]byte, len(keys))
	for i, key := range keys {
		if data, ok := s.data[key]; ok {
			cp := make([]byte, len(data))
			copy(cp, data)
			out[i] = cp
		}
	}
	return out, nil
}

// SetNX stores the value only if the key is absent. The single mutex gives
// the insert-if-absent atomicity concurrent inserts rely on.
func (s *Store) SetNX(_ context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; ok {
		return false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return true, nil
}

// Del removes a key, reporting whether it was present.
func (s *Store) Del(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return false, nil
	}
	delete(s.data, key)
	return true, nil
}

// Exists checks if a key exists.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok, nil
}

// Scan returns all keys matching a glob-style pattern.
func (s *Store) Scan(_ context.Context, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.data {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		if ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
