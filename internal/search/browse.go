package search

import (
	"strings"

	"github.com/pageza/nutrilog/backend/internal/model"
)

// Browse is the unscored search mode used by the category browser. A food
// matches when its name, description or any tag contains query, ignoring case.
// An empty query returns the whole category listing in catalog order.
func (e *Engine) Browse(query, category string) []model.FoodItem {
	foods := e.foods.AllFoods(category)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return foods
	}

	out := []model.FoodItem{}
	for _, f := range foods {
		if browseMatch(f, q) {
			out = append(out, f)
		}
	}
	return out
}

func browseMatch(f model.FoodItem, q string) bool {
	if strings.Contains(strings.ToLower(f.Name), q) ||
		strings.Contains(strings.ToLower(f.Description), q) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
