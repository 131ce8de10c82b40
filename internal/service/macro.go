package service

import (
	"context"
	"strconv"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/types"
)

const (
	// DefaultOptionsLimit caps the number of foods returned with the targets
	DefaultOptionsLimit = 50

	fatKcalPerGram     = 9
	proteinKcalPerGram = 4
	carbsKcalPerGram   = 4

	// Fixed carbohydrate share added to the fat:protein parts
	carbParts = 0.1
)

// MacroService computes per-meal macro targets and the matching food options
type MacroService struct {
	foods IFoodService
	limit int
}

// Ensure MacroService implements IMacroService
var _ IMacroService = (*MacroService)(nil)

// NewMacroService creates a MacroService. A limit <= 0 uses DefaultOptionsLimit.
func NewMacroService(foods IFoodService, limit int) *MacroService {
	if limit <= 0 {
		limit = DefaultOptionsLimit
	}
	return &MacroService{foods: foods, limit: limit}
}

// FoodOptions returns the per-meal targets together with the first foods of
// the requested type
func (s *MacroService) FoodOptions(ctx context.Context, req *types.FoodOptionsRequest) (*models.FoodOptions, error) {
	targets, err := CalculateTargets(req.Calories, req.Meals, req.Ratio)
	if err != nil {
		return nil, err
	}

	foods, err := s.foods.Options(ctx, req.FoodType, s.limit)
	if err != nil {
		return nil, err
	}

	return &models.FoodOptions{
		PerMealTargets: targets,
		FoodOptions:    foods,
	}, nil
}

// CalculateTargets splits a daily calorie budget evenly across meals and
// divides each meal's energy into fat, protein and carbs by the fat:protein
// ratio plus a fixed carb share. Carbs take whatever energy is left over.
func CalculateTargets(calories float64, meals int, ratio float64) (models.MacroTarget, error) {
	if meals == 0 {
		return models.MacroTarget{}, ErrDivisionByZero
	}
	kcalPerMeal := calories / float64(meals)

	totalParts := ratio + 1 + carbParts
	fatKcal := (ratio / totalParts) * kcalPerMeal
	proteinKcal := (1 / totalParts) * kcalPerMeal
	carbsKcal := kcalPerMeal - (fatKcal + proteinKcal)

	return models.MacroTarget{
		Fat:     round1(fatKcal / fatKcalPerGram),
		Protein: round1(proteinKcal / proteinKcalPerGram),
		Carbs:   round1(carbsKcal / carbsKcalPerGram),
	}, nil
}

// round1 rounds to one decimal place using the exact binary value of x,
// resolving exact ties to even.
func round1(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return r
}
