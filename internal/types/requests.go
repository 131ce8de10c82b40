package types

import (
	"errors"
	"fmt"
)

// FoodOptionsRequest is the input of the food options calculation
type FoodOptionsRequest struct {
	FoodType string
	Calories float64
	Meals    int
	Ratio    float64
}

// ParseFoodOptionsRequest reads a request from a decoded JSON object.
// calories and ratio accept numbers or numeric strings, meals accepts
// integers, integer strings, or numbers that are truncated.
func ParseFoodOptionsRequest(body map[string]any) (*FoodOptionsRequest, error) {
	req := &FoodOptionsRequest{}

	switch ft := body["food_type"].(type) {
	case nil:
	case string:
		req.FoodType = ft
	default:
		return nil, fmt.Errorf("food_type must be a string, got %v", ft)
	}

	raw, ok := body["calories"]
	if !ok {
		return nil, errors.New("missing field: calories")
	}
	if req.Calories, ok = ToFloat(raw); !ok {
		return nil, fmt.Errorf("could not convert calories to a number: %q", ToText(raw))
	}

	raw, ok = body["meals"]
	if !ok {
		return nil, errors.New("missing field: meals")
	}
	if req.Meals, ok = ToInt(raw); !ok {
		return nil, fmt.Errorf("could not convert meals to an integer: %q", ToText(raw))
	}

	raw, ok = body["ratio"]
	if !ok {
		return nil, errors.New("missing field: ratio")
	}
	if req.Ratio, ok = ToFloat(raw); !ok {
		return nil, fmt.Errorf("could not convert ratio to a number: %q", ToText(raw))
	}

	return req, nil
}
