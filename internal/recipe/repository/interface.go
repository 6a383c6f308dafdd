package repository

import (
	"context"

	"github.com/priyanka7rc/laya/internal/recipe"
)

// Repository defines all data access methods for recipes and their
// ingredients.
type Repository interface {
	// CreateRecipe inserts a recipe and its ingredients in one transaction.
	CreateRecipe(ctx context.Context, opt CreateRecipeOptions) (recipe.Recipe, error)

	// GetOneRecipe retrieves a recipe with its ingredients. Zero-value Recipe
	// (ID == "") when not found — not an error.
	GetOneRecipe(ctx context.Context, opt GetOneRecipeOptions) (recipe.Recipe, error)

	// ListRecipes returns a paginated list (without ingredients) and total.
	ListRecipes(ctx context.Context, opt ListRecipesOptions) ([]recipe.Recipe, int, error)

	// UpdateRecipe updates header fields and, when ReplaceIngredients is set,
	// swaps the ingredient set in the same transaction.
	UpdateRecipe(ctx context.Context, opt UpdateRecipeOptions) (recipe.Recipe, error)

	// DeleteRecipe removes a recipe; ingredients cascade.
	DeleteRecipe(ctx context.Context, opt DeleteRecipeOptions) error
}
