package filter

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/record"
)

func makeRecord(t *testing.T, value string) record.Record {
	t.Helper()
	props := record.ComputeProperties(value)
	return record.Reconstruct(props.Hash, value, props, time.Now().UTC())
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestMatches_EmptySetMatchesAll(t *testing.T) {
	var set Set
	if !set.Matches(makeRecord(t, "anything")) {
		t.Error("empty set should match every record")
	}
}

func TestMatches_Palindrome(t *testing.T) {
	set := Set{IsPalindrome: boolPtr(true)}
	if !set.Matches(makeRecord(t, "racecar")) {
		t.Error("racecar should match is_palindrome=true")
	}
	if set.Matches(makeRecord(t, "hello")) {
		t.Error("hello should not match is_palindrome=true")
	}

	set = Set{IsPalindrome: boolPtr(false)}
	if !set.Matches(makeRecord(t, "hello")) {
		t.Error("hello should match is_palindrome=false")
	}
}

func TestMatches_LengthBoundsInclusive(t *testing.T) {
	set := Set{MinLength: intPtr(5)}
	records := []record.Record{
		makeRecord(t, "abc"),     // 3
		makeRecord(t, "abcde"),   // 5
		makeRecord(t, "abcdefg"), // 7
	}
	matched := set.Apply(records)
	if len(matched) != 2 {
		t.Fatalf("matched %d records, want 2", len(matched))
	}
	for _, rec := range matched {
		if rec.Properties().Length < 5 {
			t.Errorf("record %q has length %d, below min", rec.Value(), rec.Properties().Length)
		}
	}

	set = Set{MaxLength: intPtr(5)}
	matched = set.Apply(records)
	if len(matched) != 2 {
		t.Fatalf("max_length=5 matched %d records, want 2", len(matched))
	}
}

func TestMatches_WordCount(t *testing.T) {
	set := Set{WordCount: intPtr(2)}
	if !set.Matches(makeRecord(t, "two words")) {
		t.Error("expected match for two words")
	}
	if set.Matches(makeRecord(t, "one")) {
		t.Error("one word should not match word_count=2")
	}
}

func TestMatches_ContainsCharacter_CaseInsensitive(t *testing.T) {
	set := Set{ContainsCharacter: "a"}
	if !set.Matches(makeRecord(t, "Apple")) {
		t.Error("Apple should match contains_character=a")
	}
	if set.Matches(makeRecord(t, "cherry")) {
		t.Error("cherry should not match contains_character=a")
	}
}

func TestMatches_CombinedAnd(t *testing.T) {
	set := Set{IsPalindrome: boolPtr(true), MinLength: intPtr(5)}
	if !set.Matches(makeRecord(t, "racecar")) {
		t.Error("racecar should satisfy both constraints")
	}
	if set.Matches(makeRecord(t, "aba")) {
		t.Error("aba is a palindrome but too short")
	}
	if set.Matches(makeRecord(t, "abcdefg")) {
		t.Error("abcdefg is long enough but not a palindrome")
	}
}

func TestFromParams_Valid(t *testing.T) {
	params := url.Values{}
	params.Set("is_palindrome", "true")
	params.Set("min_length", "3")
	params.Set("max_length", "10")
	params.Set("word_count", "1")
	params.Set("contains_character", "z")

	set, err := FromParams(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.IsPalindrome == nil || !*set.IsPalindrome {
		t.Error("is_palindrome not parsed")
	}
	if set.MinLength == nil || *set.MinLength != 3 {
		t.Error("min_length not parsed")
	}
	if set.MaxLength == nil || *set.MaxLength != 10 {
		t.Error("max_length not parsed")
	}
	if set.WordCount == nil || *set.WordCount != 1 {
		t.Error("word_count not parsed")
	}
	if set.ContainsCharacter != "z" {
		t.Error("contains_character not parsed")
	}
}

func TestFromParams_Empty(t *testing.T) {
	set, err := FromParams(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.IsEmpty() {
		t.Error("expected empty set")
	}
}

func TestFromParams_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad bool", "is_palindrome", "yes"},
		{"bool case sensitive", "is_palindrome", "True"},
		{"non-integer min", "min_length", "five"},
		{"non-integer max", "max_length", "1.5"},
		{"non-integer word count", "word_count", "x"},
		{"multi-char contains", "contains_character", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			params.Set(tt.key, tt.value)
			if _, err := FromParams(params); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("FromParams(%s=%s) err = %v, want ErrValidation", tt.key, tt.value, err)
			}
		})
	}
}

func TestEcho(t *testing.T) {
	set := Set{MinLength: intPtr(5), ContainsCharacter: "a"}
	m := set.Echo()
	if len(m) != 2 {
		t.Fatalf("echo has %d entries, want 2", len(m))
	}
	if m["min_length"] != 5 {
		t.Errorf("min_length = %v", m["min_length"])
	}
	if m["contains_character"] != "a" {
		t.Errorf("contains_character = %v", m["contains_character"])
	}
}
