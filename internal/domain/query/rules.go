package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/filter"
)

// rule is a single cue matcher: a pure function from lowercased query text
// to an optional contribution to the filter set. Returns true when the cue
// was recognized.
type rule struct {
	cue   string
	apply func(text string, set *filter.Set) bool
}

var (
	longerThanRe = regexp.MustCompile(`longer than (\d+)`)
	containsRe   = regexp.MustCompile(`contains? (?:the )?(?:letter|character) ([a-z0-9])`)
)

// rules is the fixed ordered cue list. Extending the parser means appending
// another rule here; each is testable in isolation.
var rules = []rule{
	{
		// "palindrom" covers palindrome, palindromes, palindromic.
		cue: "palindrome",
		apply: func(text string, set *filter.Set) bool {
			if !strings.Contains(text, "palindrom") {
				return false
			}
			v := true
			set.IsPalindrome = &v
			return true
		},
	},
	{
		cue: "single word",
		apply: func(text string, set *filter.Set) bool {
			if !strings.Contains(text, "single word") {
				return false
			}
			n := 1
			set.WordCount = &n
			return true
		},
	},
	{
		// "longer than N" is strict, so the minimum length is N+1.
		cue: "longer than",
		apply: func(text string, set *filter.Set) bool {
			m := longerThanRe.FindStringSubmatch(text)
			if m == nil {
				return false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return false
			}
			min := n + 1
			set.MinLength = &min
			return true
		},
	},
	{
		cue: "containing character",
		apply: func(text string, set *filter.Set) bool {
			m := containsRe.FindStringSubmatch(text)
			if m == nil {
				return false
			}
			set.ContainsCharacter = m[1]
			return true
		},
	},
}
