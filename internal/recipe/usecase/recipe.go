package usecase

import (
	"context"
	"strings"

	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/recipe"
	"github.com/priyanka7rc/laya/internal/recipe/repository"
)

// Create inserts a recipe with its ingredients.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input recipe.CreateInput) (recipe.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return recipe.CreateOutput{}, recipe.ErrEmptyTitle
	}

	rec, err := uc.repo.CreateRecipe(ctx, repository.CreateRecipeOptions{
		UserID:      sc.UserID,
		Title:       input.Title,
		Servings:    input.Servings,
		Notes:       input.Notes,
		Ingredients: input.Ingredients,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRecipe: %v", err)
		return recipe.CreateOutput{}, err
	}

	return recipe.CreateOutput{Recipe: rec}, nil
}

// List returns the user's recipes.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input recipe.ListInput) (recipe.ListOutput, error) {
	recipes, total, err := uc.repo.ListRecipes(ctx, repository.ListRecipesOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRecipes: %v", err)
		return recipe.ListOutput{}, err
	}

	return recipe.ListOutput{
		Recipes: recipes,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}

// Detail returns one recipe with its ingredients.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (recipe.DetailOutput, error) {
	rec, err := uc.repo.GetOneRecipe(ctx, repository.GetOneRecipeOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRecipe: %v", err)
		return recipe.DetailOutput{}, err
	}
	if rec.ID == "" {
		return recipe.DetailOutput{}, recipe.ErrRecipeNotFound
	}

	return recipe.DetailOutput{Recipe: rec}, nil
}

// Update applies header changes and optionally replaces the ingredient set.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input recipe.UpdateInput) (recipe.UpdateOutput, error) {
	rec, err := uc.repo.UpdateRecipe(ctx, repository.UpdateRecipeOptions{
		UserID:             sc.UserID,
		ID:                 input.ID,
		Title:              input.Title,
		Servings:           input.Servings,
		Notes:              input.Notes,
		ReplaceIngredients: input.Ingredients != nil,
		Ingredients:        input.Ingredients,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateRecipe: %v", err)
		return recipe.UpdateOutput{}, err
	}
	if rec.ID == "" {
		return recipe.UpdateOutput{}, recipe.ErrRecipeNotFound
	}

	return recipe.UpdateOutput{Recipe: rec}, nil
}

// Delete removes a recipe and its ingredients.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	rec, err := uc.repo.GetOneRecipe(ctx, repository.GetOneRecipeOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneRecipe: %v", err)
		return err
	}
	if rec.ID == "" {
		return recipe.ErrRecipeNotFound
	}

	if err := uc.repo.DeleteRecipe(ctx, repository.DeleteRecipeOptions{UserID: sc.UserID, ID: id}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteRecipe: %v", err)
		return err
	}
	return nil
}
