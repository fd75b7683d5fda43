package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/db"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain"
	domrec "github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
)

// DefaultKeyPrefix namespaces record keys in the backing store.
const DefaultKeyPrefix = "strings:"

// store is the consumer interface for records (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Del(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/strings.Repository over a key-value store.
// One key per record, keyed by content hash.
type Repo struct {
	store  store
	prefix string
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: DefaultKeyPrefix}
}

// WithKeyPrefix overrides the key prefix.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// Insert stores a record under its content hash. A concurrent or repeated
// insert of the same value observes domain.ErrAlreadyExists; the stored
// record is never overwritten.
func (r *Repo) Insert(ctx context.Context, rec domrec.Record) error {
	data, err := recordToBytes(rec)
	if err != nil {
		return err
	}

	set, err := r.store.SetNX(ctx, r.key(rec.ID()), data)
	if err != nil {
		return fmt.Errorf("setnx %s: %w", rec.ID(), err)
	}
	if !set {
		return domain.ErrAlreadyExists
	}
	return nil
}

// Get returns a record by its content hash.
func (r *Repo) Get(ctx context.Context, id string) (domrec.Record, error) {
	data, err := r.store.Get(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domrec.Record{}, domain.ErrNotFound
		}
		return domrec.Record{}, fmt.Errorf("get %s: %w", id, err)
	}
	return recordFromBytes(data)
}

// Delete removes a record by its content hash. Deleting an absent id is a
// no-op at the store level but surfaces as domain.ErrNotFound here.
func (r *Repo) Delete(ctx context.Context, id string) error {
	deleted, err := r.store.Del(ctx, r.key(id))
	if err != nil {
		return fmt.Errorf("del %s: %w", id, err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// List returns every stored record.
func (r *Repo) List(ctx context.Context) ([]domrec.Record, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	rows, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget: %w", err)
	}

	recs := make([]domrec.Record, 0, len(rows))
	for i, data := range rows {
		if data == nil {
			// Deleted between SCAN and MGET.
			continue
		}
		rec, err := recordFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"*")
	if err != nil {
		return 0, fmt.Errorf("scan: %w", err)
	}
	return len(keys), nil
}

func (r *Repo) key(id string) string {
	return r.prefix + id
}
