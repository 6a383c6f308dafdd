package usecase

import (
	"context"
	"fmt"

	"github.com/priyanka7rc/laya/internal/grocery"
	"github.com/priyanka7rc/laya/internal/grocery/repository"
	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/pkg/weekdate"
)

// Regenerate fully recomputes and replaces the grocery list for the week
// containing anchorDate. Any read or write failure aborts the whole operation
// and propagates; callers retry the full call.
func (uc *implUseCase) Regenerate(ctx context.Context, sc model.Scope, anchorDate string) error {
	anchor, err := weekdate.Parse(anchorDate)
	if err != nil {
		return grocery.ErrInvalidDate
	}

	monday := weekdate.Monday(anchor)
	mondayStr := weekdate.Format(monday)
	sundayStr := weekdate.Format(monday.AddDate(0, 0, 6))

	// Serialize per (user, week): a stale concurrent run must not clobber a
	// newer one after it finishes.
	unlock := uc.locks.Lock(sc.UserID + "|" + mondayStr)
	defer unlock()

	recipeIDs, err := uc.repo.ListWeekRecipeIDs(ctx, repository.ListWeekRecipeIDsOptions{
		UserID: sc.UserID,
		From:   mondayStr,
		To:     sundayStr,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Regenerate ListWeekRecipeIDs: %v", err)
		return fmt.Errorf("read meal plan for week %s: %w", mondayStr, err)
	}

	// No planned recipes: the week's list is cleared, nothing is inserted.
	if len(recipeIDs) == 0 {
		if err := uc.repo.DeleteWeekItems(ctx, repository.DeleteWeekItemsOptions{
			UserID: sc.UserID,
			Week:   mondayStr,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.Regenerate DeleteWeekItems: %v", err)
			return fmt.Errorf("clear grocery list for week %s: %w", mondayStr, err)
		}
		uc.l.Infof(ctx, "uc.Regenerate: week %s has no recipes, list cleared (user=%s)", mondayStr, sc.UserID)
		return nil
	}

	rows, err := uc.repo.ListIngredientsByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Regenerate ListIngredientsByRecipeIDs: %v", err)
		return fmt.Errorf("read ingredients for week %s: %w", mondayStr, err)
	}

	items := aggregate(rows)

	if err := uc.repo.ReplaceWeekItems(ctx, repository.ReplaceWeekItemsOptions{
		UserID: sc.UserID,
		Week:   mondayStr,
		Items:  items,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Regenerate ReplaceWeekItems: %v", err)
		return fmt.Errorf("replace grocery list for week %s: %w", mondayStr, err)
	}

	uc.l.Infof(ctx, "uc.Regenerate: grocery list regenerated for week %s (%d items, %d recipes, user=%s)",
		mondayStr, len(items), len(recipeIDs), sc.UserID)
	return nil
}
