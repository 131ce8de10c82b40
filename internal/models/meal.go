package models

import (
	"encoding/json"
)

// Meal is a saved meal record. It is kept as raw JSON so that whatever the
// client stored is returned unchanged.
type Meal map[string]json.RawMessage

// Name returns the meal name, or "" when it is missing or not a string.
func (m Meal) Name() string {
	raw, ok := m["name"]
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return ""
	}
	return name
}

// Valid reports whether the meal carries a non-empty name, rows and a target ratio.
func (m Meal) Valid() bool {
	if m.Name() == "" {
		return false
	}
	if _, ok := m["rows"]; !ok {
		return false
	}
	_, ok := m["targetRatio"]
	return ok
}

// MealBook maps meal names to their saved records
type MealBook map[string]Meal
