package strings

import (
	"context"

	domrec "github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
)

// Repository defines the storage contract for string records.
type Repository interface {
	Insert(ctx context.Context, rec domrec.Record) error
	Get(ctx context.Context, id string) (domrec.Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domrec.Record, error)
	Count(ctx context.Context) (int, error)
}
