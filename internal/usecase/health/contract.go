package health

import "context"

// DBPinger checks storage availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// RecordCounter reports the number of stored records.
type RecordCounter interface {
	Count(ctx context.Context) (int, error)
}
