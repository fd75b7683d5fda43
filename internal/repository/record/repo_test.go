package record

import (
	"context"
	"errors"
	"testing"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/db"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain"
)

func TestInsert_KeyAndPayload(t *testing.T) {
	repo, ms := newTestRepo(t)
	rec := testRecord(t, "racecar")

	var gotKey string
	var gotValue []byte
	ms.setNXFn = func(_ context.Context, key string, value []byte) (bool, error) {
		gotKey = key
		gotValue = value
		return true, nil
	}

	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if gotKey != DefaultKeyPrefix+rec.ID() {
		t.Errorf("key = %q, want %q", gotKey, DefaultKeyPrefix+rec.ID())
	}

	decoded, err := recordFromBytes(gotValue)
	if err != nil {
		t.Fatalf("decode stored payload: %v", err)
	}
	if decoded.Value() != "racecar" || decoded.ID() != rec.ID() {
		t.Errorf("round-trip mismatch: %q / %q", decoded.Value(), decoded.ID())
	}
	if decoded.CreatedAt().IsZero() {
		t.Error("created_at lost in storage round-trip")
	}
}

func TestInsert_DuplicateConflict(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.setNXFn = func(_ context.Context, _ string, _ []byte) (bool, error) {
		return false, nil
	}

	err := repo.Insert(context.Background(), testRecord(t, "racecar"))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	_, err := repo.Get(context.Background(), "deadbeef")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_Found(t *testing.T) {
	repo, ms := newTestRepo(t)
	rec := testRecord(t, "hello")
	data, err := recordToBytes(rec)
	if err != nil {
		t.Fatalf("recordToBytes: %v", err)
	}
	ms.getFn = func(_ context.Context, key string) ([]byte, error) {
		if key != DefaultKeyPrefix+rec.ID() {
			t.Errorf("key = %q", key)
		}
		return data, nil
	}

	got, err := repo.Get(context.Background(), rec.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value() != "hello" {
		t.Errorf("value = %q", got.Value())
	}
}

func TestDelete_AbsentIsNotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.delFn = func(_ context.Context, _ string) (bool, error) {
		return false, nil
	}

	err := repo.Delete(context.Background(), "deadbeef")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestList_SkipsRacedDeletes(t *testing.T) {
	repo, ms := newTestRepo(t)
	a := testRecord(t, "aaa")
	b := testRecord(t, "bbb")
	aData, _ := recordToBytes(a)
	bData, _ := recordToBytes(b)

	ms.scanFn = func(_ context.Context, pattern string) ([]string, error) {
		if pattern != DefaultKeyPrefix+"*" {
			t.Errorf("pattern = %q", pattern)
		}
		return []string{DefaultKeyPrefix + a.ID(), DefaultKeyPrefix + "gone", DefaultKeyPrefix + b.ID()}, nil
	}
	ms.getMultiFn = func(_ context.Context, _ []string) ([][]byte, error) {
		return [][]byte{aData, nil, bData}, nil
	}

	recs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("List returned %d records, want 2", len(recs))
	}
}

func TestCount(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.scanFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"strings:a", "strings:b"}, nil
	}

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestWithKeyPrefix(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms).WithKeyPrefix("custom:")

	var gotKey string
	ms.setNXFn = func(_ context.Context, key string, _ []byte) (bool, error) {
		gotKey = key
		return true, nil
	}
	rec := testRecord(t, "x")
	_ = repo.Insert(context.Background(), rec)
	if gotKey != "custom:"+rec.ID() {
		t.Errorf("key = %q", gotKey)
	}
}
