package mocks

import (
	"context"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockMealService is a mock implementation of the saved meal service
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) SaveMeal(ctx context.Context, meal models.Meal) error {
	return m.Called(ctx, meal).Error(0)
}

func (m *MockMealService) ListMealNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMealService) GetMeal(ctx context.Context, name string) (models.Meal, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Meal), args.Error(1)
}

func (m *MockMealService) DeleteMeal(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}
