package record

import (
	"context"
	"testing"
	"time"

	domrec "github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn      func(ctx context.Context, key string) ([]byte, error)
	getMultiFn func(ctx context.Context, keys []string) ([][]byte, error)
	setNXFn    func(ctx context.Context, key string, value []byte) (bool, error)
	delFn      func(ctx context.Context, key string) (bool, error)
	scanFn     func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) GetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if m.getMultiFn != nil {
		return m.getMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	if m.setNXFn != nil {
		return m.setNXFn(ctx, key, value)
	}
	return true, nil
}

func (m *mockStore) Del(ctx context.Context, key string) (bool, error) {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return true, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testRecord(t *testing.T, value string) domrec.Record {
	t.Helper()
	props := domrec.ComputeProperties(value)
	return domrec.Reconstruct(props.Hash, value, props, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}
