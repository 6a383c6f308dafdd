package repository

import "github.com/priyanka7rc/laya/internal/recipe"

// CreateRecipeOptions holds parameters for inserting a recipe.
type CreateRecipeOptions struct {
	UserID      string
	Title       string
	Servings    *int
	Notes       *string
	Ingredients []recipe.IngredientInput
}

// GetOneRecipeOptions identifies a recipe to fetch.
type GetOneRecipeOptions struct {
	UserID string
	ID     string
}

// ListRecipesOptions holds pagination parameters.
type ListRecipesOptions struct {
	UserID string
	Limit  int
	Offset int
}

// UpdateRecipeOptions holds a partial header update plus an optional full
// ingredient replacement.
type UpdateRecipeOptions struct {
	UserID             string
	ID                 string
	Title              string
	Servings           *int
	Notes              *string
	ReplaceIngredients bool
	Ingredients        []recipe.IngredientInput
}

// DeleteRecipeOptions identifies a recipe to remove.
type DeleteRecipeOptions struct {
	UserID string
	ID     string
}
