package model

import "math"

const (
	// MinQuantity is the smallest serving multiplier a caller may submit.
	MinQuantity = 0.5
	// QuantityStep is the increment between valid serving multipliers.
	QuantityStep = 0.5
	// MaxQuantity is the largest serving multiplier a caller may submit.
	MaxQuantity = 100
)

// ComposedNutrition is the rounded total for a food, its add-ons and a quantity.
// Calories are whole numbers, every other field carries one decimal place.
type ComposedNutrition struct {
	Calories int      `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Fiber    float64  `json:"fiber"`
	Sugar    float64  `json:"sugar"`
	AddonIDs []string `json:"addon_ids"`
	Quantity float64  `json:"quantity"`
}

// NutritionEstimate is a coarse per-serving recipe estimate in whole units.
type NutritionEstimate struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sugar    int `json:"sugar"`
}

// ValidQuantity reports whether q lies in [MinQuantity, MaxQuantity] and is a
// whole multiple of QuantityStep.
func ValidQuantity(q float64) bool {
	if math.IsNaN(q) || q < MinQuantity || q > MaxQuantity {
		return false
	}
	steps := q / QuantityStep
	return !math.IsInf(steps, 0) && steps == math.Trunc(steps)
}
