package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain"
)

// FromParams validates query parameters and builds a Set. Every violation
// is a user error wrapping domain.ErrValidation; values are never coerced.
func FromParams(params url.Values) (Set, error) {
	var set Set

	if raw := params.Get("is_palindrome"); raw != "" {
		switch raw {
		case "true":
			v := true
			set.IsPalindrome = &v
		case "false":
			v := false
			set.IsPalindrome = &v
		default:
			return Set{}, fmt.Errorf("is_palindrome must be \"true\" or \"false\", got %q: %w", raw, domain.ErrValidation)
		}
	}

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"word_count", &set.WordCount},
		{"min_length", &set.MinLength},
		{"max_length", &set.MaxLength},
	} {
		raw := params.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Set{}, fmt.Errorf("%s must be an integer, got %q: %w", p.name, raw, domain.ErrValidation)
		}
		*p.dst = &n
	}

	if raw := params.Get("contains_character"); raw != "" {
		if utf8.RuneCountInString(raw) != 1 {
			return Set{}, fmt.Errorf("contains_character must be a single character, got %q: %w", raw, domain.ErrValidation)
		}
		set.ContainsCharacter = raw
	}

	return set, nil
}
