// Package query translates free-text queries into structured filter sets
// using a fixed ordered list of pattern rules. It is a heuristic matcher,
// not an NLP system: no tokenizer, no stemming, no synonym graph.
package query

import (
	"fmt"
	"strings"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/domain/filter"
)

// Result holds the parsed filter set and the textual cues that produced it.
type Result struct {
	Filters filter.Set
	Cues    []string
}

// Parse runs every rule against the lowercased query text. Rules are
// independent and cumulative; each writes its own filter field, and rules
// evaluated later win on field collisions. A query matching no rule is a
// user error, never a silent empty filter.
func Parse(text string) (Result, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return Result{}, fmt.Errorf("query is empty: %w", domain.ErrValidation)
	}

	var res Result
	for _, r := range rules {
		if r.apply(lowered, &res.Filters) {
			res.Cues = append(res.Cues, r.cue)
		}
	}

	if len(res.Cues) == 0 {
		return Result{}, fmt.Errorf("no recognized cue in %q: %w", text, domain.ErrUnparseableQuery)
	}
	return res, nil
}
