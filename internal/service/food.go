package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/store"
	"github.com/pageza/macro-service/backend/internal/types"
)

// FoodService holds the merged food table: the base spreadsheet rows
// followed by the user-added foods.
type FoodService struct {
	custom *store.JSONFile[[]models.FoodRecord]

	mu          sync.RWMutex
	base        []models.FoodItem
	baseHasType bool
	foods       []models.FoodItem
	hasType     bool
}

// Ensure FoodService implements IFoodService
var _ IFoodService = (*FoodService)(nil)

// NewFoodService merges the base table with the custom foods file
func NewFoodService(base []models.FoodItem, baseHasType bool, custom *store.JSONFile[[]models.FoodRecord]) (*FoodService, error) {
	s := &FoodService{
		custom:      custom,
		base:        base,
		baseHasType: baseHasType,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the merged table from the base rows and the custom foods file
func (s *FoodService) Reload() error {
	records, err := s.custom.Load()
	if err != nil {
		return fmt.Errorf("failed to load custom foods: %w", err)
	}

	foods := make([]models.FoodItem, len(s.base), len(s.base)+len(records))
	copy(foods, s.base)
	hasType := s.baseHasType
	for _, rec := range records {
		if _, ok := rec["Type"]; ok {
			hasType = true
		}
		if food, ok := recordToFood(rec); ok {
			foods = append(foods, food)
		} else {
			log.Warn().Interface("record", rec).Msg("Skipping custom food with missing or non-numeric values")
		}
	}

	s.mu.Lock()
	s.foods = foods
	s.hasType = hasType
	s.mu.Unlock()

	log.Debug().Int("base", len(s.base)).Int("custom", len(records)).Msg("Merged food table")
	return nil
}

// ListFoods returns every food projected to Item, Protein, Fat and Carbs
func (s *FoodService) ListFoods(ctx context.Context) ([]models.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FoodItem, len(s.foods))
	for i, f := range s.foods {
		out[i] = f.Projection()
	}
	return out, nil
}

// AddFood appends a food to the custom foods file and to the in-memory table.
// The record is stored exactly as submitted.
func (s *FoodService) AddFood(ctx context.Context, record models.FoodRecord) (models.FoodRecord, error) {
	if !record.HasRequired() {
		return nil, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.custom.Update(func(records *[]models.FoodRecord) error {
		*records = append(*records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := record["Type"]; ok {
		s.hasType = true
	}
	if food, ok := recordToFood(record); ok {
		s.foods = append(s.foods, food)
	} else {
		log.Warn().Interface("record", record).Msg("Added food is not usable in the catalog")
	}

	log.Info().Str("item", types.ToText(record["Item"])).Msg("Added custom food")
	return record, nil
}

// Options returns up to limit foods in table order, keeping only foods whose
// type matches foodType case-insensitively when a type is given and the table
// has a type column. A limit <= 0 means no limit.
func (s *FoodService) Options(ctx context.Context, foodType string, limit int) ([]models.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filter := foodType != "" && s.hasType
	out := make([]models.FoodItem, 0)
	for _, f := range s.foods {
		if limit > 0 && len(out) >= limit {
			break
		}
		if filter && !strings.EqualFold(f.Type, foodType) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func recordToFood(rec models.FoodRecord) (models.FoodItem, bool) {
	item := types.ToText(rec["Item"])
	if rec["Item"] == nil || item == "" {
		return models.FoodItem{}, false
	}
	protein, okP := types.ToFloat(rec["Protein"])
	fat, okF := types.ToFloat(rec["Fat"])
	carbs, okC := types.ToFloat(rec["Carbs"])
	if !okP || !okF || !okC {
		return models.FoodItem{}, false
	}

	food := models.FoodItem{Item: item, Protein: protein, Fat: fat, Carbs: carbs}
	if t, ok := rec["Type"]; ok && t != nil {
		food.Type = types.ToText(t)
	}
	return food, true
}
