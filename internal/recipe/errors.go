package recipe

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrEmptyTitle     = errors.New("recipe title is required")
)
