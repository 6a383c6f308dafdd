package mealplan

import "errors"

var (
	ErrInvalidDay   = errors.New("invalid day")
	ErrInvalidMeal  = errors.New("invalid meal slot")
	ErrSlotNotFound = errors.New("meal plan slot not found")
)
