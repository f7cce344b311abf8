package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pageza/nutrilog/backend/internal/model"
)

// normalize returns a copy of data with ids trimmed, search tokens lower-cased,
// default servings applied and the legacy category table folded into foods.
func normalize(data Data) Data {
	out := Data{
		Foods:                 make([]model.FoodItem, len(data.Foods)),
		Addons:                make([]model.AddOn, len(data.Addons)),
		Recipes:               make([]model.Recipe, len(data.Recipes)),
		AddonCategoriesByFood: trimTableKeys(data.AddonCategoriesByFood),
	}

	for i, f := range data.Foods {
		f.ID = strings.TrimSpace(f.ID)
		f.Category, _ = model.ParseCategory(string(f.Category))
		f.Keywords = lowerTokens(f.Keywords)
		f.Tags = lowerTokens(f.Tags)
		f.EligibleAddonCategories = appendMissing(nil, lowerTokens(f.EligibleAddonCategories))
		if extra, ok := out.AddonCategoriesByFood[f.ID]; ok {
			f.EligibleAddonCategories = appendMissing(f.EligibleAddonCategories, lowerTokens(extra))
		}
		f.PopularAddonIDs = trimIDs(f.PopularAddonIDs)
		out.Foods[i] = f
	}

	for i, a := range data.Addons {
		a.ID = strings.TrimSpace(a.ID)
		a.Category = strings.ToLower(strings.TrimSpace(a.Category))
		out.Addons[i] = a
	}

	for i, r := range data.Recipes {
		r.ID = strings.TrimSpace(r.ID)
		r.RequiredIngredientIDs = trimIDs(r.RequiredIngredientIDs)
		r.SuggestedAddonIDs = trimIDs(r.SuggestedAddonIDs)
		r.Tags = lowerTokens(r.Tags)
		if r.Servings == 0 {
			r.Servings = 1
		}
		out.Recipes[i] = r
	}
	return out
}

func validate(data Data) []Violation {
	var vs []Violation
	add := func(entity, id, format string, args ...interface{}) {
		vs = append(vs, Violation{Entity: entity, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	foodIDs := make(map[string]bool, len(data.Foods))
	for i, f := range data.Foods {
		if f.ID == "" {
			add("food", "", "entry %d has an empty id", i)
			continue
		}
		if foodIDs[f.ID] {
			add("food", f.ID, "duplicate id")
		}
		foodIDs[f.ID] = true
		if strings.TrimSpace(f.Name) == "" {
			add("food", f.ID, "name is required")
		}
		if _, ok := model.ParseCategory(string(f.Category)); !ok {
			add("food", f.ID, "unknown category %q", f.Category)
		}
		for _, field := range f.BaseMacros.Invalid() {
			add("food", f.ID, "macro %s must be a non-negative number", field)
		}
		if len(f.EligibleAddonCategories) > 0 && len(f.PopularAddonIDs) > 0 {
			add("food", f.ID, "declares both eligible add-on categories and popular add-on ids")
		}
	}

	addonIDs := make(map[string]bool, len(data.Addons))
	for i, a := range data.Addons {
		if a.ID == "" {
			add("addon", "", "entry %d has an empty id", i)
			continue
		}
		if addonIDs[a.ID] {
			add("addon", a.ID, "duplicate id")
		}
		addonIDs[a.ID] = true
		for _, field := range a.Macros.Invalid() {
			add("addon", a.ID, "macro %s must be a non-negative number", field)
		}
	}

	for _, f := range data.Foods {
		for _, id := range f.PopularAddonIDs {
			if !addonIDs[id] {
				add("food", f.ID, "popular add-on %q does not exist", id)
			}
		}
	}

	// Sorted so the error text is stable across runs.
	tableFoods := make([]string, 0, len(data.AddonCategoriesByFood))
	for id := range data.AddonCategoriesByFood {
		tableFoods = append(tableFoods, id)
	}
	sort.Strings(tableFoods)
	for _, id := range tableFoods {
		if !foodIDs[strings.TrimSpace(id)] {
			add("addon_categories_by_food", id, "food does not exist")
		}
	}

	recipeIDs := make(map[string]bool, len(data.Recipes))
	for i, r := range data.Recipes {
		if r.ID == "" {
			add("recipe", "", "entry %d has an empty id", i)
			continue
		}
		if recipeIDs[r.ID] {
			add("recipe", r.ID, "duplicate id")
		}
		recipeIDs[r.ID] = true
		if len(r.RequiredIngredientIDs) == 0 {
			add("recipe", r.ID, "at least one required ingredient is needed")
		}
		for _, id := range r.RequiredIngredientIDs {
			if !foodIDs[id] {
				add("recipe", r.ID, "required ingredient %q does not exist", id)
			}
		}
		for _, id := range r.SuggestedAddonIDs {
			if !addonIDs[id] {
				add("recipe", r.ID, "suggested add-on %q does not exist", id)
			}
		}
		if r.Servings < 0 {
			add("recipe", r.ID, "servings must be positive, got %d", r.Servings)
		}
	}
	return vs
}

func lowerTokens(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func trimIDs(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// trimTableKeys trims the food ids keying the legacy category table. Keys that
// collide after trimming have their categories merged.
func trimTableKeys(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for id, cats := range in {
		id = strings.TrimSpace(id)
		out[id] = append(out[id], cats...)
	}
	return out
}

func appendMissing(dst, extra []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range extra {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	return dst
}
