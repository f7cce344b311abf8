package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/nutrilog/backend/internal/models"
	"github.com/pageza/nutrilog/backend/internal/recipe"
	"github.com/pageza/nutrilog/backend/internal/types"
)

// MockMealService is a mock implementation of the IMealService interface
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) Log(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.MealLog, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealLog), args.Error(1)
}

func (m *MockMealService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealLog), args.Error(1)
}

func (m *MockMealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	args := m.Called(ctx, userID, mealID)
	return args.Error(0)
}

func (m *MockMealService) RecentFoodIDs(ctx context.Context, userID uuid.UUID, n int) ([]string, error) {
	args := m.Called(ctx, userID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMealService) Suggestions(ctx context.Context, userID uuid.UUID, limit int) ([]recipe.Suggestion, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recipe.Suggestion), args.Error(1)
}
