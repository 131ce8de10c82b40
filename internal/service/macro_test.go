package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/macro-service/backend/internal/mocks"
	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/types"
)

func TestCalculateTargetsExample(t *testing.T) {
	targets, err := CalculateTargets(2000, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, models.MacroTarget{Fat: 26.5, Protein: 59.5, Carbs: 6.0}, targets)
}

func TestCalculateTargetsEnergyBalance(t *testing.T) {
	// Each macro is rounded to 0.05 g, so the reconstructed energy can be off
	// by at most 0.05*9 + 0.05*4 + 0.05*4 kcal.
	const tolerance = 0.85 + 1e-9

	for _, calories := range []float64{1200, 1500, 1800, 2000, 2350, 3100} {
		for meals := 1; meals <= 6; meals++ {
			for _, ratio := range []float64{0.5, 1, 1.5, 2, 3, 4} {
				name := fmt.Sprintf("%v/%d/%v", calories, meals, ratio)
				targets, err := CalculateTargets(calories, meals, ratio)
				require.NoError(t, err, name)

				energy := targets.Fat*fatKcalPerGram + targets.Protein*proteinKcalPerGram + targets.Carbs*carbsKcalPerGram
				assert.LessOrEqual(t, math.Abs(energy-calories/float64(meals)), tolerance, name)
			}
		}
	}
}

func TestCalculateTargetsZeroMeals(t *testing.T) {
	_, err := CalculateTargets(2000, 0, 1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestCalculateTargetsNearZeroParts(t *testing.T) {
	// -1.1 + 1 + 0.1 is a tiny non-zero float, so the split blows up instead of failing
	targets, err := CalculateTargets(2000, 3, -1.1)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(targets.Fat), 1e12)
	assert.Greater(t, math.Abs(targets.Protein), 1e12)
}

func TestRound1(t *testing.T) {
	tests := map[float64]float64{
		0.25:   0.2,
		0.75:   0.8,
		0.35:   0.3,
		26.455: 26.5,
		59.52:  59.5,
		5.95:   6.0,
		-1.26:  -1.3,
	}
	for in, want := range tests {
		assert.Equal(t, want, round1(in), "round1(%v)", in)
	}
}

func TestFoodOptions(t *testing.T) {
	foods := &mocks.MockFoodService{}
	options := []models.FoodItem{{Item: "Egg", Protein: 12.6, Fat: 9.5, Carbs: 0.7, Type: "Protein"}}
	foods.On("Options", mock.Anything, "protein", DefaultOptionsLimit).Return(options, nil)

	svc := NewMacroService(foods, 0)
	out, err := svc.FoodOptions(context.Background(), &types.FoodOptionsRequest{
		FoodType: "protein",
		Calories: 2000,
		Meals:    4,
		Ratio:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MacroTarget{Fat: 26.5, Protein: 59.5, Carbs: 6.0}, out.PerMealTargets)
	assert.Equal(t, options, out.FoodOptions)
	foods.AssertExpectations(t)
}

func TestFoodOptionsZeroMealsSkipsCatalog(t *testing.T) {
	foods := &mocks.MockFoodService{}
	svc := NewMacroService(foods, 10)

	_, err := svc.FoodOptions(context.Background(), &types.FoodOptionsRequest{Calories: 2000, Meals: 0, Ratio: 1})
	assert.ErrorIs(t, err, ErrDivisionByZero)
	foods.AssertNotCalled(t, "Options", mock.Anything, mock.Anything, mock.Anything)
}
