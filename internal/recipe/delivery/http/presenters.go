package http

import (
	"time"

	"github.com/priyanka7rc/laya/internal/recipe"
)

// --- Request DTOs ---

type ingredientReq struct {
	Name string   `json:"name" binding:"required,min=1,max=100"`
	Qty  *float64 `json:"qty"  binding:"omitempty,gt=0"`
	Unit *string  `json:"unit" binding:"omitempty,max=30"`
}

func (r ingredientReq) toInput() recipe.IngredientInput {
	return recipe.IngredientInput{
		Name: r.Name,
		Qty:  r.Qty,
		Unit: r.Unit,
	}
}

type createReq struct {
	Title       string          `json:"title"       binding:"required,min=1,max=200"`
	Servings    *int            `json:"servings"    binding:"omitempty,gt=0"`
	Notes       *string         `json:"notes"       binding:"omitempty,max=2000"`
	Ingredients []ingredientReq `json:"ingredients" binding:"dive"`
}

func (r createReq) toInput() recipe.CreateInput {
	return recipe.CreateInput{
		Title:       r.Title,
		Servings:    r.Servings,
		Notes:       r.Notes,
		Ingredients: toIngredientInputs(r.Ingredients),
	}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() recipe.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return recipe.ListInput{Limit: limit, Offset: offset}
}

// ---

// updateReq distinguishes an absent ingredients field (keep the current set)
// from an empty array (remove all ingredients).
type updateReq struct {
	ID          string          `json:"-"` // populated from URI param
	Title       string          `json:"title"       binding:"omitempty,min=1,max=200"`
	Servings    *int            `json:"servings"    binding:"omitempty,gt=0"`
	Notes       *string         `json:"notes"       binding:"omitempty,max=2000"`
	Ingredients []ingredientReq `json:"ingredients" binding:"omitempty,dive"`
}

func (r updateReq) toInput() recipe.UpdateInput {
	var ings []recipe.IngredientInput
	if r.Ingredients != nil {
		ings = toIngredientInputs(r.Ingredients)
	}
	return recipe.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Servings:    r.Servings,
		Notes:       r.Notes,
		Ingredients: ings,
	}
}

func toIngredientInputs(reqs []ingredientReq) []recipe.IngredientInput {
	ings := make([]recipe.IngredientInput, len(reqs))
	for i, in := range reqs {
		ings[i] = in.toInput()
	}
	return ings
}

// --- Response DTOs ---

type ingredientResp struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Qty  *float64 `json:"qty,omitempty"`
	Unit *string  `json:"unit,omitempty"`
}

func newIngredientResp(in recipe.Ingredient) ingredientResp {
	return ingredientResp{
		ID:   in.ID,
		Name: in.Name,
		Qty:  in.Qty,
		Unit: in.Unit,
	}
}

type recipeResp struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Servings    *int             `json:"servings,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Ingredients []ingredientResp `json:"ingredients"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func newRecipeResp(rec recipe.Recipe) recipeResp {
	ings := make([]ingredientResp, len(rec.Ingredients))
	for i, in := range rec.Ingredients {
		ings[i] = newIngredientResp(in)
	}
	return recipeResp{
		ID:          rec.ID,
		Title:       rec.Title,
		Servings:    rec.Servings,
		Notes:       rec.Notes,
		Ingredients: ings,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

type createResp struct {
	Recipe recipeResp `json:"recipe"`
}

func newCreateResp(out recipe.CreateOutput) createResp {
	return createResp{Recipe: newRecipeResp(out.Recipe)}
}

type listResp struct {
	Recipes []recipeResp `json:"recipes"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func newListResp(out recipe.ListOutput) listResp {
	recipes := make([]recipeResp, len(out.Recipes))
	for i, rec := range out.Recipes {
		recipes[i] = newRecipeResp(rec)
	}
	return listResp{
		Recipes: recipes,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}

type detailResp struct {
	Recipe recipeResp `json:"recipe"`
}

func newDetailResp(out recipe.DetailOutput) detailResp {
	return detailResp{Recipe: newRecipeResp(out.Recipe)}
}

type updateResp struct {
	Recipe recipeResp `json:"recipe"`
}

func newUpdateResp(out recipe.UpdateOutput) updateResp {
	return updateResp{Recipe: newRecipeResp(out.Recipe)}
}
