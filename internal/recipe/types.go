package recipe

import "time"

// Recipe is a stored recipe with its ingredient list.
type Recipe struct {
	ID          string
	UserID      string
	Title       string
	Servings    *int
	Notes       *string
	Ingredients []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ingredient is one line of a recipe. Qty and Unit are optional: "salt to
// taste" has neither.
type Ingredient struct {
	ID       string
	RecipeID string
	Name     string
	Qty      *float64
	Unit     *string
}

// IngredientInput is one ingredient line in a create/update request.
type IngredientInput struct {
	Name string
	Qty  *float64
	Unit *string
}

type CreateInput struct {
	Title       string
	Servings    *int
	Notes       *string
	Ingredients []IngredientInput
}

type CreateOutput struct {
	Recipe Recipe
}

type ListInput struct {
	Limit  int
	Offset int
}

type ListOutput struct {
	Recipes []Recipe
	Total   int
	Limit   int
	Offset  int
}

type DetailOutput struct {
	Recipe Recipe
}

// UpdateInput replaces the recipe header fields and, when Ingredients is
// non-nil, the entire ingredient set.
type UpdateInput struct {
	ID          string
	Title       string
	Servings    *int
	Notes       *string
	Ingredients []IngredientInput
}

type UpdateOutput struct {
	Recipe Recipe
}
