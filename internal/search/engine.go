// Package search ranks catalog foods against free-text queries.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pageza/nutrilog/backend/internal/model"
)

const (
	// MaxResults caps the ranked result list.
	MaxResults = 20
	// MinQueryLength is the shortest normalized query, in runes, that is searched.
	MinQueryLength = 2

	nameScore    = 10
	keywordScore = 5
	fuzzyScore   = 3
)

// FoodSource provides the candidate foods for a search.
type FoodSource interface {
	AllFoods(category string) []model.FoodItem
}

// Result is a ranked food together with its relevance score.
type Result struct {
	Food  model.FoodItem `json:"food"`
	Score int            `json:"score"`
}

// Engine searches one catalog snapshot. It holds no mutable state.
type Engine struct {
	foods FoodSource
}

// New returns an Engine over foods.
func New(foods FoodSource) *Engine {
	return &Engine{foods: foods}
}

// Search returns the foods matching query, best first.
func (e *Engine) Search(query, category string) []model.FoodItem {
	results := e.Rank(query, category)
	out := make([]model.FoodItem, len(results))
	for i, r := range results {
		out[i] = r.Food
	}
	return out
}

// Rank scores every candidate in category (or the whole catalog when category
// is empty) and returns those with a positive score. Ties keep catalog order.
func (e *Engine) Rank(query, category string) []Result {
	q, ok := normalizeQuery(query)
	if !ok {
		return []Result{}
	}

	results := []Result{}
	for _, f := range e.foods.AllFoods(category) {
		if score := scoreFood(f, q); score > 0 {
			results = append(results, Result{Food: f, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

func scoreFood(f model.FoodItem, q string) int {
	name := strings.ToLower(f.Name)
	score := 0
	if strings.Contains(name, q) {
		score += nameScore
	}
	for _, kw := range f.Keywords {
		if strings.Contains(kw, q) {
			score += keywordScore
		}
	}
	if fuzzyHit(name, f.Keywords, q) {
		score += fuzzyScore
	}
	return score
}

func fuzzyHit(name string, keywords []string, q string) bool {
	if FuzzyMatch(q, name) {
		return true
	}
	for _, kw := range keywords {
		if FuzzyMatch(q, kw) {
			return true
		}
	}
	return false
}

func normalizeQuery(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	return q, utf8.RuneCountInString(q) >= MinQueryLength
}
