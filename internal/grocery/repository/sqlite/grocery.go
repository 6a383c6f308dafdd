package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/priyanka7rc/laya/internal/grocery"
	repo "github.com/priyanka7rc/laya/internal/grocery/repository"
)

const timeLayout = time.RFC3339

// ListWeekRecipeIDs returns the distinct non-null recipe ids referenced by
// the user's meal-plan slots in [From, To].
func (r *implRepository) ListWeekRecipeIDs(ctx context.Context, opt repo.ListWeekRecipeIDsOptions) ([]string, error) {
	const query = `
		SELECT DISTINCT recipe_id FROM meal_plan_slots
		WHERE user_id = ? AND day >= ? AND day <= ? AND recipe_id IS NOT NULL
		ORDER BY recipe_id`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.From, opt.To)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListWeekRecipeIDs"), err)
		return nil, repo.ErrFailedToSelect
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToSelect
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListWeekRecipeIDs"), err)
		return nil, repo.ErrFailedToSelect
	}
	return ids, nil
}

// ListIngredientsByRecipeIDs returns all ingredient rows of the given recipes
// in one batched read. Ordered by recipe id and line position so aggregation
// sees rows in a stable order (first-seen name/unit stays deterministic).
func (r *implRepository) ListIngredientsByRecipeIDs(ctx context.Context, recipeIDs []string) ([]grocery.IngredientRow, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(recipeIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := `
		SELECT name, qty, unit FROM ingredients
		WHERE recipe_id IN (` + placeholders + `)
		ORDER BY recipe_id, position`

	args := make([]any, len(recipeIDs))
	for i, id := range recipeIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIngredientsByRecipeIDs"), err)
		return nil, repo.ErrFailedToSelect
	}
	defer rows.Close()

	var ings []grocery.IngredientRow
	for rows.Next() {
		var (
			ing  grocery.IngredientRow
			qty  sql.NullFloat64
			unit sql.NullString
		)
		if err := rows.Scan(&ing.Name, &qty, &unit); err != nil {
			return nil, repo.ErrFailedToSelect
		}
		if qty.Valid {
			ing.Qty = &qty.Float64
		}
		if unit.Valid {
			ing.Unit = &unit.String
		}
		ings = append(ings, ing)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListIngredientsByRecipeIDs"), err)
		return nil, repo.ErrFailedToSelect
	}
	return ings, nil
}

// DeleteWeekItems removes every item for (user, week).
func (r *implRepository) DeleteWeekItems(ctx context.Context, opt repo.DeleteWeekItemsOptions) error {
	const query = `DELETE FROM grocery_list_items WHERE user_id = ? AND source_week = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.Week); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteWeekItems"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ReplaceWeekItems deletes the (user, week) items and inserts the new set in
// one transaction, so a reader never sees a half-replaced list.
func (r *implRepository) ReplaceWeekItems(ctx context.Context, opt repo.ReplaceWeekItemsOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceWeekItems"), err)
		return repo.ErrFailedToReplace
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM grocery_list_items WHERE user_id = ? AND source_week = ?`,
		opt.UserID, opt.Week,
	); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceWeekItems"), err)
		return repo.ErrFailedToReplace
	}

	const insert = `
		INSERT INTO grocery_list_items (id, user_id, source_week, name, qty, unit, checked, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?)`
	now := time.Now().UTC().Format(timeLayout)
	for _, item := range opt.Items {
		if _, err := tx.ExecContext(ctx, insert,
			uuid.NewString(), opt.UserID, opt.Week, item.Name,
			nullableFloat(item.Qty), nullableString(item.Unit), now,
		); err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceWeekItems"), err)
			return repo.ErrFailedToReplace
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceWeekItems"), err)
		return repo.ErrFailedToReplace
	}
	return nil
}

// ListItems returns the items for (user, week).
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]grocery.Item, error) {
	const query = `
		SELECT id, user_id, source_week, name, qty, unit, checked, created_at
		FROM grocery_list_items
		WHERE user_id = ? AND source_week = ?
		ORDER BY name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Week)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToSelect
	}
	defer rows.Close()

	var items []grocery.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, repo.ErrFailedToSelect
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToSelect
	}
	return items, nil
}

// GetOneItem returns a zero-value Item when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (grocery.Item, error) {
	const query = `
		SELECT id, user_id, source_week, name, qty, unit, checked, created_at
		FROM grocery_list_items WHERE user_id = ? AND id = ? LIMIT 1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, opt.UserID, opt.ID))
	if err == sql.ErrNoRows {
		return grocery.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return grocery.Item{}, repo.ErrFailedToSelect
	}
	return item, nil
}

// SetItemChecked updates one item's checked flag.
func (r *implRepository) SetItemChecked(ctx context.Context, opt repo.SetItemCheckedOptions) (grocery.Item, error) {
	const query = `UPDATE grocery_list_items SET checked = ? WHERE user_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(opt.Checked), opt.UserID, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetItemChecked"), err)
		return grocery.Item{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return grocery.Item{}, nil
	}
	return r.GetOneItem(ctx, repo.GetOneItemOptions{UserID: opt.UserID, ID: opt.ID})
}

// DeleteItem removes one item.
func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	const query = `DELETE FROM grocery_list_items WHERE user_id = ? AND id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (grocery.Item, error) {
	var (
		item      grocery.Item
		qty       sql.NullFloat64
		unit      sql.NullString
		checked   int
		createdAt string
	)
	if err := row.Scan(
		&item.ID, &item.UserID, &item.SourceWeek, &item.Name,
		&qty, &unit, &checked, &createdAt,
	); err != nil {
		return grocery.Item{}, err
	}
	if qty.Valid {
		item.Qty = &qty.Float64
	}
	if unit.Valid {
		item.Unit = &unit.String
	}
	item.Checked = checked != 0
	item.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return item, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
