package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/store"
)

// MealService handles saved meal operations
type MealService struct {
	meals *store.JSONFile[models.MealBook]
}

// Ensure MealService implements IMealService
var _ IMealService = (*MealService)(nil)

// NewMealService creates the meals file as an empty object if it does not exist
func NewMealService(meals *store.JSONFile[models.MealBook]) (*MealService, error) {
	if err := meals.Ensure(models.MealBook{}); err != nil {
		return nil, err
	}
	return &MealService{meals: meals}, nil
}

// SaveMeal stores a meal under its name, replacing any meal with the same name
func (s *MealService) SaveMeal(ctx context.Context, meal models.Meal) error {
	if !meal.Valid() {
		return ErrInvalidMeal
	}

	name := meal.Name()
	err := s.meals.Update(func(book *models.MealBook) error {
		if *book == nil {
			*book = models.MealBook{}
		}
		(*book)[name] = meal
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("meal", name).Msg("Saved meal")
	return nil
}

// ListMealNames returns the saved meal names in ascending order
func (s *MealService) ListMealNames(ctx context.Context) ([]string, error) {
	book, err := s.meals.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(book))
	for name := range book {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GetMeal retrieves a saved meal by name
func (s *MealService) GetMeal(ctx context.Context, name string) (models.Meal, error) {
	book, err := s.meals.Load()
	if err != nil {
		return nil, err
	}

	meal, ok := book[name]
	if !ok {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

// DeleteMeal removes a saved meal
func (s *MealService) DeleteMeal(ctx context.Context, name string) error {
	err := s.meals.Update(func(book *models.MealBook) error {
		if _, ok := (*book)[name]; !ok {
			return ErrMealNotFound
		}
		delete(*book, name)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("meal", name).Msg("Deleted meal")
	return nil
}
