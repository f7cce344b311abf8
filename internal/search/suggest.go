package search

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// didYouMeanThreshold is the minimum normalized similarity for a suggestion.
const didYouMeanThreshold = 0.6

// DidYouMean proposes the food name or keyword closest to query by edit
// distance. It is meant for ranked searches that came back empty.
func (e *Engine) DidYouMean(query string) (string, bool) {
	q, ok := normalizeQuery(query)
	if !ok {
		return "", false
	}

	best, bestScore := "", 0.0
	consider := func(candidate string) {
		if candidate == "" || candidate == q {
			return
		}
		if s := similarity(q, candidate); s > bestScore {
			best, bestScore = candidate, s
		}
	}
	for _, f := range e.foods.AllFoods("") {
		consider(strings.ToLower(f.Name))
		for _, kw := range f.Keywords {
			consider(kw)
		}
	}

	if bestScore < didYouMeanThreshold {
		return "", false
	}
	return best, true
}

// similarity maps the Levenshtein distance onto [0, 1], 1 being identical.
func similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
