package record

import (
	"testing"
	"time"
)

func TestNew_IDIsContentHash(t *testing.T) {
	rec := New("racecar")
	if rec.ID() != HashValue("racecar") {
		t.Errorf("ID = %q, want hash %q", rec.ID(), HashValue("racecar"))
	}
	if rec.ID() != rec.Properties().Hash {
		t.Error("ID and properties hash diverge")
	}
	if rec.Value() != "racecar" {
		t.Errorf("Value = %q", rec.Value())
	}
	if rec.CreatedAt().IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestReconstruct_NoRecomputation(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	props := ComputeProperties("hello")
	rec := Reconstruct(props.Hash, "hello", props, created)

	if rec.CreatedAt() != created {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt(), created)
	}
	if rec.ID() != props.Hash {
		t.Errorf("ID = %q, want %q", rec.ID(), props.Hash)
	}
}
