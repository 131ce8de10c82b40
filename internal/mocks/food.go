package mocks

import (
	"context"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockFoodService is a mock implementation of the food catalog service
type MockFoodService struct {
	mock.Mock
}

// ListFoods mocks the ListFoods method
func (m *MockFoodService) ListFoods(ctx context.Context) ([]models.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

// AddFood mocks the AddFood method
func (m *MockFoodService) AddFood(ctx context.Context, record models.FoodRecord) (models.FoodRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.FoodRecord), args.Error(1)
}

// Options mocks the Options method
func (m *MockFoodService) Options(ctx context.Context, foodType string, limit int) ([]models.FoodItem, error) {
	args := m.Called(ctx, foodType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}
