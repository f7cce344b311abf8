// Package catalog holds the immutable food, add-on and recipe reference data.
package catalog

import (
	"github.com/pageza/nutrilog/backend/internal/model"
)

// Data is the raw catalog document as supplied at process start.
//
// AddonCategoriesByFood is the legacy food to add-on category table. Entries
// are folded into each food's EligibleAddonCategories when the Store is built.
type Data struct {
	Foods                 []model.FoodItem    `json:"foods" yaml:"foods"`
	Addons                []model.AddOn       `json:"addons" yaml:"addons"`
	Recipes               []model.Recipe      `json:"recipes" yaml:"recipes"`
	AddonCategoriesByFood map[string][]string `json:"addon_categories_by_food,omitempty" yaml:"addon_categories_by_food"`
}

// Store is a validated, read-only view over the catalog. It is never mutated
// after New returns, so it is safe for concurrent use without locking.
type Store struct {
	foods            []model.FoodItem
	foodIndex        map[string]int
	addons           []model.AddOn
	addonIndex       map[string]int
	addonsByCategory map[string][]int
	recipes          []model.Recipe
	recipeIndex      map[string]int
}

// Counts summarizes the size of a catalog snapshot.
type Counts struct {
	Foods   int `json:"foods"`
	Addons  int `json:"addons"`
	Recipes int `json:"recipes"`
}

// New validates data and builds a Store. Any integrity problem is fatal and
// reported as an *IntegrityError.
func New(data Data) (*Store, error) {
	data = normalize(data)
	if violations := validate(data); len(violations) > 0 {
		return nil, &IntegrityError{Violations: violations}
	}

	s := &Store{
		foods:            data.Foods,
		foodIndex:        make(map[string]int, len(data.Foods)),
		addons:           data.Addons,
		addonIndex:       make(map[string]int, len(data.Addons)),
		addonsByCategory: make(map[string][]int),
		recipes:          data.Recipes,
		recipeIndex:      make(map[string]int, len(data.Recipes)),
	}
	for i, f := range s.foods {
		s.foodIndex[f.ID] = i
	}
	for i, a := range s.addons {
		s.addonIndex[a.ID] = i
		s.addonsByCategory[a.Category] = append(s.addonsByCategory[a.Category], i)
	}
	for i, r := range s.recipes {
		s.recipeIndex[r.ID] = i
	}
	return s, nil
}

// FoodByID returns the food with the given id. A missing id is not an error.
func (s *Store) FoodByID(id string) (model.FoodItem, bool) {
	i, ok := s.foodIndex[id]
	if !ok {
		return model.FoodItem{}, false
	}
	return s.foods[i], true
}

// AddonByID returns the add-on with the given id.
func (s *Store) AddonByID(id string) (model.AddOn, bool) {
	i, ok := s.addonIndex[id]
	if !ok {
		return model.AddOn{}, false
	}
	return s.addons[i], true
}

// RecipeByID returns the recipe with the given id.
func (s *Store) RecipeByID(id string) (model.Recipe, bool) {
	i, ok := s.recipeIndex[id]
	if !ok {
		return model.Recipe{}, false
	}
	return s.recipes[i], true
}

// AddonsForFood resolves the add-ons a food may be customized with.
//
// Category-mapped foods get every add-on of each eligible category, categories
// in the order the food declares them and add-ons in catalog order within a
// category. Foods with an explicit id list get those add-ons in list order.
// Unknown foods and foods without a mapping yield an empty list.
func (s *Store) AddonsForFood(foodID string) []model.AddOn {
	food, ok := s.FoodByID(foodID)
	if !ok {
		return []model.AddOn{}
	}

	out := []model.AddOn{}
	if len(food.PopularAddonIDs) > 0 {
		for _, id := range food.PopularAddonIDs {
			if a, ok := s.AddonByID(id); ok {
				out = append(out, a)
			}
		}
		return out
	}
	for _, cat := range food.EligibleAddonCategories {
		for _, i := range s.addonsByCategory[cat] {
			out = append(out, s.addons[i])
		}
	}
	return out
}

// AllFoods returns the catalog in declared order, restricted to category when
// it is non-empty. An unknown category yields an empty list.
func (s *Store) AllFoods(category string) []model.FoodItem {
	if category == "" {
		out := make([]model.FoodItem, len(s.foods))
		copy(out, s.foods)
		return out
	}
	c, _ := model.ParseCategory(category)
	out := []model.FoodItem{}
	for _, f := range s.foods {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// AllAddons returns every add-on in catalog order.
func (s *Store) AllAddons() []model.AddOn {
	out := make([]model.AddOn, len(s.addons))
	copy(out, s.addons)
	return out
}

// Recipes returns every recipe in declared order.
func (s *Store) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Counts reports how many entities the snapshot holds.
func (s *Store) Counts() Counts {
	return Counts{
		Foods:   len(s.foods),
		Addons:  len(s.addons),
		Recipes: len(s.recipes),
	}
}
