package service

import "errors"

var (
	ErrMissingFields  = errors.New("missing fields")
	ErrInvalidMeal    = errors.New("invalid meal data")
	ErrMealNotFound   = errors.New("meal not found")
	ErrDivisionByZero = errors.New("division by zero")
)
