package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/priyanka7rc/laya/internal/mealplan"
	repo "github.com/priyanka7rc/laya/internal/mealplan/repository"
)

const timeLayout = time.RFC3339

// UpsertSlot creates or overwrites the slot at (user, day, meal). The unique
// index on (user_id, day, slot) drives the conflict clause.
func (r *implRepository) UpsertSlot(ctx context.Context, opt repo.UpsertSlotOptions) (mealplan.Slot, error) {
	const query = `
		INSERT INTO meal_plan_slots (id, user_id, day, slot, recipe_id, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, day, slot) DO UPDATE SET
			recipe_id  = excluded.recipe_id,
			note       = excluded.note,
			updated_at = excluded.updated_at`

	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Day, opt.Meal,
		nullableString(opt.RecipeID), nullableString(opt.Note),
		now.Format(timeLayout), now.Format(timeLayout),
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSlot"), err)
		return mealplan.Slot{}, repo.ErrFailedToUpsert
	}

	return r.GetOneSlot(ctx, repo.GetOneSlotOptions{UserID: opt.UserID, Day: opt.Day, Meal: opt.Meal})
}

// ListSlots returns the user's slots with day in [From, To].
func (r *implRepository) ListSlots(ctx context.Context, opt repo.ListSlotsOptions) ([]mealplan.Slot, error) {
	const query = `
		SELECT id, user_id, day, slot, recipe_id, note, created_at, updated_at
		FROM meal_plan_slots
		WHERE user_id = ? AND day >= ? AND day <= ?
		ORDER BY day, slot`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.From, opt.To)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSlots"), err)
		return nil, repo.ErrFailedToSelect
	}
	defer rows.Close()

	var slots []mealplan.Slot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, repo.ErrFailedToSelect
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSlots"), err)
		return nil, repo.ErrFailedToSelect
	}
	return slots, nil
}

// GetOneSlot returns a zero-value Slot when not found.
func (r *implRepository) GetOneSlot(ctx context.Context, opt repo.GetOneSlotOptions) (mealplan.Slot, error) {
	const query = `
		SELECT id, user_id, day, slot, recipe_id, note, created_at, updated_at
		FROM meal_plan_slots
		WHERE user_id = ? AND day = ? AND slot = ? LIMIT 1`

	slot, err := scanSlot(r.db.QueryRowContext(ctx, query, opt.UserID, opt.Day, opt.Meal))
	if err == sql.ErrNoRows {
		return mealplan.Slot{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSlot"), err)
		return mealplan.Slot{}, repo.ErrFailedToSelect
	}
	return slot, nil
}

// DeleteSlot removes the slot at (user, day, meal).
func (r *implRepository) DeleteSlot(ctx context.Context, opt repo.DeleteSlotOptions) error {
	const query = `DELETE FROM meal_plan_slots WHERE user_id = ? AND day = ? AND slot = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.Day, opt.Meal); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSlot"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (mealplan.Slot, error) {
	var (
		slot      mealplan.Slot
		recipeID  sql.NullString
		note      sql.NullString
		createdAt string
		updatedAt string
	)
	if err := row.Scan(
		&slot.ID, &slot.UserID, &slot.Day, &slot.Meal,
		&recipeID, &note, &createdAt, &updatedAt,
	); err != nil {
		return mealplan.Slot{}, err
	}
	if recipeID.Valid {
		slot.RecipeID = &recipeID.String
	}
	if note.Valid {
		slot.Note = &note.String
	}
	slot.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	slot.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return slot, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
