package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/nutrilog/backend/internal/catalog"
	"github.com/pageza/nutrilog/backend/internal/model"
	"github.com/pageza/nutrilog/backend/internal/models"
	"github.com/pageza/nutrilog/backend/internal/recipe"
	"github.com/pageza/nutrilog/backend/internal/types"
)

// ICatalogService defines the read operations over the food catalog
type ICatalogService interface {
	Foods(category string) []model.FoodItem
	Food(id string) (model.FoodItem, error)
	AddonsForFood(foodID string) ([]model.AddOn, error)
	Addons() []model.AddOn
	Addon(id string) (model.AddOn, error)
	Search(query, category, mode string) (*types.SearchResponse, error)
	Compose(req *types.ComposeRequest) (*model.ComposedNutrition, error)
	ComposeFood(req *types.ComposeRequest) (model.FoodItem, *model.ComposedNutrition, error)
	Recipes() []types.RecipeDetail
	Recipe(id string) (*types.RecipeDetail, error)
	SuggestRecipes(recentFoodIDs []string, limit int) []recipe.Suggestion
	Counts() catalog.Counts
}

// IMealService defines the interface for meal log operations
type IMealService interface {
	Log(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.MealLog, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealLog, error)
	Delete(ctx context.Context, userID, mealID uuid.UUID) error
	RecentFoodIDs(ctx context.Context, userID uuid.UUID, n int) ([]string, error)
	Suggestions(ctx context.Context, userID uuid.UUID, limit int) ([]recipe.Suggestion, error)
}

// ITokenService defines the interface for bearer token operations
type ITokenService interface {
	GenerateToken(userID uuid.UUID, username string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
