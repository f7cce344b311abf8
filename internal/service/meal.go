package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/nutrilog/backend/internal/models"
	"github.com/pageza/nutrilog/backend/internal/recipe"
	"github.com/pageza/nutrilog/backend/internal/types"
)

const (
	DefaultMealListLimit = 20
	MaxMealListLimit     = 100
	// recentFoodWindow is how many distinct recent foods feed suggestions.
	recentFoodWindow = 10
)

// MealService persists composed meals. The catalog is read through
// ICatalogService; meal rows keep their own copy of the composed totals.
type MealService struct {
	db      *gorm.DB
	catalog ICatalogService
	log     logrus.FieldLogger
	now     func() time.Time
}

// NewMealService creates a new MealService
func NewMealService(db *gorm.DB, catalog ICatalogService, log logrus.FieldLogger) *MealService {
	return &MealService{db: db, catalog: catalog, log: log, now: time.Now}
}

func (s *MealService) Log(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.MealLog, error) {
	food, composed, err := s.catalog.ComposeFood(&types.ComposeRequest{
		FoodID:   req.FoodID,
		AddonIDs: req.AddonIDs,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, err
	}

	eatenAt := s.now().UTC()
	if req.EatenAt != nil {
		eatenAt = req.EatenAt.UTC()
	}

	meal := &models.MealLog{
		UserID:   userID,
		FoodID:   food.ID,
		FoodName: food.Name,
		AddonIDs: models.StringArray(composed.AddonIDs),
		Quantity: composed.Quantity,
		Calories: composed.Calories,
		Protein:  composed.Protein,
		Carbs:    composed.Carbs,
		Fat:      composed.Fat,
		Fiber:    composed.Fiber,
		Sugar:    composed.Sugar,
		EatenAt:  eatenAt,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, fmt.Errorf("failed to save meal: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"meal_id": meal.ID,
		"food_id": meal.FoodID,
	}).Info("meal logged")
	return meal, nil
}

// List returns the user's meals, most recently eaten first.
func (s *MealService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealLog, error) {
	if limit <= 0 {
		limit = DefaultMealListLimit
	}
	if limit > MaxMealListLimit {
		limit = MaxMealListLimit
	}

	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealLog{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// RecentFoodIDs returns up to n distinct food ids, most recently eaten first.
func (s *MealService) RecentFoodIDs(ctx context.Context, userID uuid.UUID, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	var rows []models.MealLog
	err := s.db.WithContext(ctx).
		Select("food_id", "eaten_at", "created_at").
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Order("created_at DESC").
		Limit(n * 5).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent foods: %w", err)
	}

	ids := []string{}
	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.FoodID] {
			continue
		}
		seen[row.FoodID] = true
		ids = append(ids, row.FoodID)
		if len(ids) == n {
			break
		}
	}
	return ids, nil
}

// Suggestions feeds the user's recent foods into the recipe matcher.
func (s *MealService) Suggestions(ctx context.Context, userID uuid.UUID, limit int) ([]recipe.Suggestion, error) {
	recent, err := s.RecentFoodIDs(ctx, userID, recentFoodWindow)
	if err != nil {
		return nil, err
	}
	return s.catalog.SuggestRecipes(recent, limit), nil
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFoodNotFound) ||
		errors.Is(err, ErrAddonNotFound) ||
		errors.Is(err, ErrRecipeNotFound) ||
		errors.Is(err, ErrMealNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
