package record

import (
	"encoding/json"
	"fmt"
	"time"

	domrec "github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
)

// recordRow is the JSON-serializable storage representation of a record.
type recordRow struct {
	ID         string             `json:"id"`
	Value      string             `json:"value"`
	Properties domrec.Properties  `json:"properties"`
	CreatedAt  time.Time          `json:"created_at"`
}

// recordToBytes serializes a domain record for storage.
func recordToBytes(rec domrec.Record) ([]byte, error) {
	row := recordRow{
		ID:         rec.ID(),
		Value:      rec.Value(),
		Properties: rec.Properties(),
		CreatedAt:  rec.CreatedAt(),
	}
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return data, nil
}

// recordFromBytes hydrates a domain record from its stored form.
func recordFromBytes(data []byte) (domrec.Record, error) {
	var row recordRow
	if err := json.Unmarshal(data, &row); err != nil {
		return domrec.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return domrec.Reconstruct(row.ID, row.Value, row.Properties, row.CreatedAt), nil
}
