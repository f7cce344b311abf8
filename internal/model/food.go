package model

import "strings"

// Category is the meal slot a food belongs to.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnacks    Category = "snacks"
)

// Categories lists every valid food category in display order.
var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategorySnacks,
}

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return c, false
}

// FoodItem is a catalog entry the user can search for and log.
//
// A food declares the add-ons it can be customized with either through
// EligibleAddonCategories or through an explicit PopularAddonIDs list, never both.
type FoodItem struct {
	ID                      string   `json:"id" yaml:"id"`
	Name                    string   `json:"name" yaml:"name"`
	Category                Category `json:"category" yaml:"category"`
	ServingSize             string   `json:"serving_size" yaml:"serving_size"`
	Description             string   `json:"description,omitempty" yaml:"description"`
	Tags                    []string `json:"tags,omitempty" yaml:"tags"`
	BaseMacros              Macros   `json:"base_macros" yaml:"base_macros"`
	Keywords                []string `json:"keywords,omitempty" yaml:"keywords"`
	EligibleAddonCategories []string `json:"eligible_addon_categories,omitempty" yaml:"eligible_addon_categories"`
	PopularAddonIDs         []string `json:"popular_addon_ids,omitempty" yaml:"popular_addon_ids"`
}

// AddOn is an optional customization with its own full-serving macros.
type AddOn struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Macros      Macros `json:"macros" yaml:"macros"`
	ServingSize string `json:"serving_size" yaml:"serving_size"`
	Category    string `json:"category" yaml:"category"`
}
