package record

import "time"

// Record is the stored string aggregate (immutable value object).
// Its ID is the SHA-256 hex digest of the value, so two records with
// equal values are the same record.
type Record struct {
	id         string
	value      string
	properties Properties
	createdAt  time.Time
}

// New computes properties for a value and creates a Record with the
// current UTC time as its creation timestamp.
func New(value string) Record {
	props := ComputeProperties(value)
	return Record{
		id:         props.Hash,
		value:      value,
		properties: props,
		createdAt:  time.Now().UTC(),
	}
}

// Reconstruct creates a Record from stored fields without recomputation
// (storage hydration).
func Reconstruct(id, value string, properties Properties, createdAt time.Time) Record {
	return Record{id: id, value: value, properties: properties, createdAt: createdAt}
}

// ID returns the content hash identifying the record.
func (r *Record) ID() string { return r.id }

// Value returns the original string.
func (r *Record) Value() string { return r.value }

// Properties returns the derived attribute bundle.
func (r *Record) Properties() Properties { return r.properties }

// CreatedAt returns the insertion timestamp.
func (r *Record) CreatedAt() time.Time { return r.createdAt }
