package types

import (
	"time"

	"github.com/pageza/nutrilog/backend/internal/model"
)

// ComposeRequest represents the request body for a nutrition composition
type ComposeRequest struct {
	FoodID   string   `json:"food_id" binding:"required"`
	AddonIDs []string `json:"addon_ids"`
	Quantity float64  `json:"quantity" binding:"required"`
}

// SuggestRecipesRequest represents the request body for recipe suggestions
type SuggestRecipesRequest struct {
	RecentFoodIDs []string `json:"recent_food_ids"`
	Limit         int      `json:"limit"`
}

// LogMealRequest represents the request body for logging a meal.
// EatenAt defaults to the time the request is handled.
type LogMealRequest struct {
	FoodID   string     `json:"food_id" binding:"required"`
	AddonIDs []string   `json:"addon_ids"`
	Quantity float64    `json:"quantity" binding:"required"`
	EatenAt  *time.Time `json:"eaten_at"`
}

// SearchResponse is returned by the search endpoint
type SearchResponse struct {
	Query      string           `json:"query"`
	Mode       string           `json:"mode"`
	Results    []model.FoodItem `json:"results"`
	DidYouMean string           `json:"did_you_mean,omitempty"`
}

// RecipeDetail is a catalog recipe with its per-serving estimate
type RecipeDetail struct {
	model.Recipe
	Estimate model.NutritionEstimate `json:"estimate"`
}
