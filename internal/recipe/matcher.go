// Package recipe suggests catalog recipes from a user's recent food history.
package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/pageza/nutrilog/backend/internal/model"
	"github.com/pageza/nutrilog/backend/internal/nutrition"
)

const (
	// DefaultLimit is used when Suggest is called with a non-positive limit.
	DefaultLimit = 6
	// defaultPicks is how many recipes are offered to a user with no history.
	defaultPicks = 3
)

// fallbackTags mark recipes worth offering even when nothing matches.
var fallbackTags = []string{"protein", "healthy"}

// addonWeight is the share of each suggested add-on counted in an estimate.
var addonWeight = decimal.RequireFromString("0.5")

// RecipeSource is the slice of the catalog the matcher reads.
type RecipeSource interface {
	Recipes() []model.Recipe
	FoodByID(id string) (model.FoodItem, bool)
	AddonByID(id string) (model.AddOn, bool)
}

// Suggestion is a recipe offered to the user with its per-serving estimate.
// Matched is set when the recipe uses a food from the user's history.
type Suggestion struct {
	Recipe   model.Recipe            `json:"recipe"`
	Estimate model.NutritionEstimate `json:"estimate"`
	Matched  bool                    `json:"matched"`
}

// Matcher ranks recipes against recent selections.
type Matcher struct {
	catalog RecipeSource
}

// NewMatcher returns a Matcher over catalog.
func NewMatcher(catalog RecipeSource) *Matcher {
	return &Matcher{catalog: catalog}
}

// Suggest returns up to limit recipes for the given recent food ids.
//
// With no history the first three catalog recipes are returned. Otherwise
// recipes needing any recent food come first, followed by recipes tagged
// protein or healthy. A recipe is listed once, at its first position.
func (m *Matcher) Suggest(recentFoodIDs []string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}
	recipes := m.catalog.Recipes()

	if len(recentFoodIDs) == 0 {
		n := defaultPicks
		if n > len(recipes) {
			n = len(recipes)
		}
		if n > limit {
			n = limit
		}
		out := make([]Suggestion, 0, n)
		for _, r := range recipes[:n] {
			out = append(out, m.suggestion(r, false))
		}
		return out
	}

	recent := make(map[string]bool, len(recentFoodIDs))
	for _, id := range recentFoodIDs {
		recent[id] = true
	}

	out := []Suggestion{}
	listed := make(map[string]bool)
	push := func(r model.Recipe, matched bool) {
		if listed[r.ID] || len(out) >= limit {
			return
		}
		listed[r.ID] = true
		out = append(out, m.suggestion(r, matched))
	}

	for _, r := range recipes {
		if usesAny(r, recent) {
			push(r, true)
		}
	}
	for _, r := range recipes {
		if isFallback(r) {
			push(r, false)
		}
	}
	return out
}

// Estimate returns the per-serving nutrition of r: every required ingredient
// in full plus half of every suggested add-on, divided by servings and rounded
// to whole units. Ids that do not resolve contribute nothing.
func (m *Matcher) Estimate(r model.Recipe) model.NutritionEstimate {
	sum := nutrition.NewMacroSum()
	for _, id := range r.RequiredIngredientIDs {
		if food, ok := m.catalog.FoodByID(id); ok {
			sum.Add(food.BaseMacros, decimal.NewFromInt(1))
		}
	}
	for _, id := range r.SuggestedAddonIDs {
		if addon, ok := m.catalog.AddonByID(id); ok {
			sum.Add(addon.Macros, addonWeight)
		}
	}
	return sum.Estimate(r.Servings)
}

func (m *Matcher) suggestion(r model.Recipe, matched bool) Suggestion {
	return Suggestion{Recipe: r, Estimate: m.Estimate(r), Matched: matched}
}

func usesAny(r model.Recipe, recent map[string]bool) bool {
	for _, id := range r.RequiredIngredientIDs {
		if recent[id] {
			return true
		}
	}
	return false
}

func isFallback(r model.Recipe) bool {
	for _, tag := range fallbackTags {
		if r.HasTag(tag) {
			return true
		}
	}
	return false
}
