package record

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Properties is the derived attribute bundle of a stored string.
// All fields are computed from the value and never mutated independently.
type Properties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	WordCount          int            `json:"word_count"`
	Hash               string         `json:"sha256_hash"`
	CharacterFrequency map[string]int `json:"character_frequency_map"`
}

// ComputeProperties derives the full attribute bundle for a value.
// Pure and total: any string is valid input, including the empty string.
func ComputeProperties(value string) Properties {
	return Properties{
		Length:             len([]rune(value)),
		IsPalindrome:       isPalindrome(value),
		UniqueCharacters:   uniqueCharacters(value),
		WordCount:          len(strings.Fields(value)),
		Hash:               HashValue(value),
		CharacterFrequency: characterFrequency(value),
	}
}

// HashValue returns the hex-encoded SHA-256 digest of a value.
// The digest doubles as the record ID (content-addressed identity).
func HashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// isPalindrome lowercases the value, strips everything outside the
// alphanumeric ASCII range and compares the result to its reverse.
// Non-ASCII letters are stripped, not transliterated.
func isPalindrome(value string) bool {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	s := b.String()
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func uniqueCharacters(value string) int {
	seen := make(map[rune]struct{})
	for _, r := range value {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// characterFrequency counts occurrences of each character in the raw,
// case-sensitive value.
func characterFrequency(value string) map[string]int {
	freq := make(map[string]int)
	for _, r := range value {
		freq[string(r)]++
	}
	return freq
}
