package model

// Recipe is a named combination of required foods and suggested add-ons.
type Recipe struct {
	ID                    string   `json:"id" yaml:"id"`
	Name                  string   `json:"name" yaml:"name"`
	Description           string   `json:"description,omitempty" yaml:"description"`
	RequiredIngredientIDs []string `json:"required_ingredient_ids" yaml:"required_ingredient_ids"`
	SuggestedAddonIDs     []string `json:"suggested_addon_ids" yaml:"suggested_addon_ids"`
	Servings              int      `json:"servings" yaml:"servings"`
	Tags                  []string `json:"tags,omitempty" yaml:"tags"`
}

// HasTag reports whether the recipe carries tag. Tags are stored lower-cased.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
