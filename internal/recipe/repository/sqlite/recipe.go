package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/priyanka7rc/laya/internal/recipe"
	repo "github.com/priyanka7rc/laya/internal/recipe/repository"
)

const timeLayout = time.RFC3339

// CreateRecipe inserts a recipe and its ingredients in one transaction.
func (r *implRepository) CreateRecipe(ctx context.Context, opt repo.CreateRecipeOptions) (recipe.Recipe, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	rec := recipe.Recipe{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Title:     opt.Title,
		Servings:  opt.Servings,
		Notes:     opt.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const insertRecipe = `
		INSERT INTO recipes (id, user_id, title, servings, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insertRecipe,
		rec.ID, rec.UserID, rec.Title, nullableInt(rec.Servings), nullableString(rec.Notes),
		now.Format(timeLayout), now.Format(timeLayout),
	); err != nil {
		r.l.Errorf(ctx, "%s recipe: %v", r.dsn("CreateRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToInsert
	}

	ings, err := insertIngredients(ctx, tx, rec.ID, opt.Ingredients)
	if err != nil {
		r.l.Errorf(ctx, "%s ingredients: %v", r.dsn("CreateRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToInsert
	}
	rec.Ingredients = ings

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToInsert
	}
	return rec, nil
}

// GetOneRecipe retrieves a recipe with its ingredients.
func (r *implRepository) GetOneRecipe(ctx context.Context, opt repo.GetOneRecipeOptions) (recipe.Recipe, error) {
	const query = `
		SELECT id, user_id, title, servings, notes, created_at, updated_at
		FROM recipes WHERE user_id = ? AND id = ? LIMIT 1`

	rec, err := scanRecipe(r.db.QueryRowContext(ctx, query, opt.UserID, opt.ID))
	if err == sql.ErrNoRows {
		return recipe.Recipe{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToGet
	}

	const ingQuery = `
		SELECT id, recipe_id, name, qty, unit FROM ingredients
		WHERE recipe_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, ingQuery, rec.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s ingredients: %v", r.dsn("GetOneRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return recipe.Recipe{}, repo.ErrFailedToGet
		}
		rec.Ingredients = append(rec.Ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return recipe.Recipe{}, repo.ErrFailedToGet
	}
	return rec, nil
}

// ListRecipes returns a paginated list (without ingredients) and total.
func (r *implRepository) ListRecipes(ctx context.Context, opt repo.ListRecipesOptions) ([]recipe.Recipe, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recipes WHERE user_id = ?`, opt.UserID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListRecipes"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := `
		SELECT id, user_id, title, servings, notes, created_at, updated_at
		FROM recipes WHERE user_id = ? ORDER BY title`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecipes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var recipes []recipe.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return recipes, total, nil
}

// UpdateRecipe updates header fields and optionally replaces ingredients.
func (r *implRepository) UpdateRecipe(ctx context.Context, opt repo.UpdateRecipeOptions) (recipe.Recipe, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	set, args := buildRecipeUpdateSet(opt)
	args = append(args, opt.UserID, opt.ID)
	res, err := tx.ExecContext(ctx, `UPDATE recipes SET `+set+` WHERE user_id = ? AND id = ?`, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return recipe.Recipe{}, nil
	}

	if opt.ReplaceIngredients {
		if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = ?`, opt.ID); err != nil {
			r.l.Errorf(ctx, "%s clear ingredients: %v", r.dsn("UpdateRecipe"), err)
			return recipe.Recipe{}, repo.ErrFailedToUpdate
		}
		if _, err := insertIngredients(ctx, tx, opt.ID, opt.Ingredients); err != nil {
			r.l.Errorf(ctx, "%s ingredients: %v", r.dsn("UpdateRecipe"), err)
			return recipe.Recipe{}, repo.ErrFailedToUpdate
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateRecipe"), err)
		return recipe.Recipe{}, repo.ErrFailedToUpdate
	}

	return r.GetOneRecipe(ctx, repo.GetOneRecipeOptions{UserID: opt.UserID, ID: opt.ID})
}

// DeleteRecipe removes a recipe; ingredients cascade via FK.
func (r *implRepository) DeleteRecipe(ctx context.Context, opt repo.DeleteRecipeOptions) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM recipes WHERE user_id = ? AND id = ?`, opt.UserID, opt.ID,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRecipe"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func insertIngredients(ctx context.Context, tx *sql.Tx, recipeID string, inputs []recipe.IngredientInput) ([]recipe.Ingredient, error) {
	const query = `
		INSERT INTO ingredients (id, recipe_id, name, qty, unit, position)
		VALUES (?, ?, ?, ?, ?, ?)`

	ings := make([]recipe.Ingredient, 0, len(inputs))
	for i, in := range inputs {
		ing := recipe.Ingredient{
			ID:       uuid.NewString(),
			RecipeID: recipeID,
			Name:     in.Name,
			Qty:      in.Qty,
			Unit:     in.Unit,
		}
		if _, err := tx.ExecContext(ctx, query,
			ing.ID, recipeID, ing.Name, nullableFloat(ing.Qty), nullableString(ing.Unit), i,
		); err != nil {
			return nil, err
		}
		ings = append(ings, ing)
	}
	return ings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (recipe.Recipe, error) {
	var (
		rec       recipe.Recipe
		servings  sql.NullInt64
		notes     sql.NullString
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &servings, &notes, &createdAt, &updatedAt); err != nil {
		return recipe.Recipe{}, err
	}
	if servings.Valid {
		v := int(servings.Int64)
		rec.Servings = &v
	}
	if notes.Valid {
		rec.Notes = &notes.String
	}
	rec.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	rec.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return rec, nil
}

func scanIngredient(row rowScanner) (recipe.Ingredient, error) {
	var (
		ing  recipe.Ingredient
		qty  sql.NullFloat64
		unit sql.NullString
	)
	if err := row.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &qty, &unit); err != nil {
		return recipe.Ingredient{}, err
	}
	if qty.Valid {
		ing.Qty = &qty.Float64
	}
	if unit.Valid {
		ing.Unit = &unit.String
	}
	return ing, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
