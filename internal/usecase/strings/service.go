// Package strings implements the application operations over stored
// strings: content-addressed insertion, lookup by value, deletion,
// structured filtering and natural-language filtering.
package strings

import (
	"context"
	"fmt"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/filter"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/query"
	domrec "github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
)

// Service handles string record operations.
type Service struct {
	repo Repository
}

// New creates a strings service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create computes properties for a value and stores it keyed by its
// content hash. A duplicate value yields domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, value string) (domrec.Record, error) {
	rec := domrec.New(value)
	if err := s.repo.Insert(ctx, rec); err != nil {
		return domrec.Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// GetByValue looks a record up by the hash of its value.
func (s *Service) GetByValue(ctx context.Context, value string) (domrec.Record, error) {
	rec, err := s.repo.Get(ctx, domrec.HashValue(value))
	if err != nil {
		return domrec.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// DeleteByValue removes the record stored under the hash of the value.
func (s *Service) DeleteByValue(ctx context.Context, value string) error {
	if err := s.repo.Delete(ctx, domrec.HashValue(value)); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// List returns the records matching every present filter constraint.
func (s *Service) List(ctx context.Context, set filter.Set) ([]domrec.Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return set.Apply(recs), nil
}

// QueryNatural parses a free-text query into a filter set and returns the
// matching records together with the parse result for echoing back.
func (s *Service) QueryNatural(ctx context.Context, text string) ([]domrec.Record, query.Result, error) {
	parsed, err := query.Parse(text)
	if err != nil {
		return nil, query.Result{}, err
	}

	recs, err := s.List(ctx, parsed.Filters)
	if err != nil {
		return nil, query.Result{}, err
	}
	return recs, parsed, nil
}
