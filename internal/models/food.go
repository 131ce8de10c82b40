package models

// FoodItem is one row of the merged food table. Macro values are passed
// through from the source as-is.
type FoodItem struct {
	Item    string  `json:"Item"`
	Protein float64 `json:"Protein"`
	Fat     float64 `json:"Fat"`
	Carbs   float64 `json:"Carbs"`
	Type    string  `json:"Type,omitempty"`
}

// Projection returns the item without its Type column.
func (f FoodItem) Projection() FoodItem {
	return FoodItem{
		Item:    f.Item,
		Protein: f.Protein,
		Fat:     f.Fat,
		Carbs:   f.Carbs,
	}
}

// MacroTarget holds per-meal grams of each macronutrient
type MacroTarget struct {
	Fat     float64 `json:"Fat"`
	Protein float64 `json:"Protein"`
	Carbs   float64 `json:"Carbs"`
}

// FoodOptions is the response of the food options calculation
type FoodOptions struct {
	PerMealTargets MacroTarget `json:"per_meal_targets"`
	FoodOptions    []FoodItem  `json:"food_options"`
}

// FoodRecord is a user-added food exactly as it was submitted
type FoodRecord map[string]any

// RequiredFoodFields lists the keys every added food must carry
var RequiredFoodFields = []string{"Item", "Protein", "Fat", "Carbs"}

// HasRequired reports whether all required keys are present
func (r FoodRecord) HasRequired() bool {
	for _, key := range RequiredFoodFields {
		if _, ok := r[key]; !ok {
			return false
		}
	}
	return true
}
