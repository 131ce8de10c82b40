package service

import (
	"context"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/types"
)

// IFoodService defines the interface for food catalog operations
type IFoodService interface {
	ListFoods(ctx context.Context) ([]models.FoodItem, error)
	AddFood(ctx context.Context, record models.FoodRecord) (models.FoodRecord, error)
	Options(ctx context.Context, foodType string, limit int) ([]models.FoodItem, error)
}

// IMealService defines the interface for saved meal operations
type IMealService interface {
	SaveMeal(ctx context.Context, meal models.Meal) error
	ListMealNames(ctx context.Context) ([]string, error)
	GetMeal(ctx context.Context, name string) (models.Meal, error)
	DeleteMeal(ctx context.Context, name string) error
}

// IMacroService defines the interface for per-meal macro calculations
type IMacroService interface {
	FoodOptions(ctx context.Context, req *types.FoodOptionsRequest) (*models.FoodOptions, error)
}
