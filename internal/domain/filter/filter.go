package filter

import (
	"strings"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
)

// Set is a partially-populated group of constraints applied conjunctively
// to stored records. Nil fields impose no constraint.
type Set struct {
	IsPalindrome      *bool
	WordCount         *int
	MinLength         *int
	MaxLength         *int
	ContainsCharacter string
}

// IsEmpty reports whether no constraint is set.
func (s Set) IsEmpty() bool {
	return s.IsPalindrome == nil && s.WordCount == nil &&
		s.MinLength == nil && s.MaxLength == nil && s.ContainsCharacter == ""
}

// Matches reports whether every present constraint holds for the record.
// Length bounds are inclusive. The character containment test is a
// case-insensitive substring check against the raw value, not against the
// normalized form used for palindrome detection.
func (s Set) Matches(rec record.Record) bool {
	props := rec.Properties()

	if s.IsPalindrome != nil && props.IsPalindrome != *s.IsPalindrome {
		return false
	}
	if s.WordCount != nil && props.WordCount != *s.WordCount {
		return false
	}
	if s.MinLength != nil && props.Length < *s.MinLength {
		return false
	}
	if s.MaxLength != nil && props.Length > *s.MaxLength {
		return false
	}
	if s.ContainsCharacter != "" {
		value := strings.ToLower(rec.Value())
		if !strings.Contains(value, strings.ToLower(s.ContainsCharacter)) {
			return false
		}
	}
	return true
}

// Apply returns the subset of records matching every present constraint.
// Single pass, no indexing; the data model targets small datasets.
func (s Set) Apply(recs []record.Record) []record.Record {
	matched := make([]record.Record, 0, len(recs))
	for _, rec := range recs {
		if s.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Echo returns the set as a JSON-friendly map of the constraints that are
// present, for echoing back to the client.
func (s Set) Echo() map[string]any {
	m := make(map[string]any)
	if s.IsPalindrome != nil {
		m["is_palindrome"] = *s.IsPalindrome
	}
	if s.WordCount != nil {
		m["word_count"] = *s.WordCount
	}
	if s.MinLength != nil {
		m["min_length"] = *s.MinLength
	}
	if s.MaxLength != nil {
		m["max_length"] = *s.MaxLength
	}
	if s.ContainsCharacter != "" {
		m["contains_character"] = s.ContainsCharacter
	}
	return m
}
