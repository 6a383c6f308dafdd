package usecase

import (
	"context"

	"github.com/priyanka7rc/laya/internal/mealplan"
	"github.com/priyanka7rc/laya/internal/mealplan/repository"
	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/pkg/weekdate"
)

// regenWarning is surfaced to the caller when the slot write succeeded but
// the grocery-list refresh did not.
const regenWarning = "meal plan saved, but the grocery list could not be refreshed; it will catch up on the next change"

var validMeals = map[string]bool{
	mealplan.MealBreakfast: true,
	mealplan.MealLunch:     true,
	mealplan.MealDinner:    true,
	mealplan.MealSnack:     true,
}

// Upsert creates or overwrites a slot, then refreshes the week's grocery
// list. A failed refresh never rolls back the slot write.
func (uc *implUseCase) Upsert(ctx context.Context, sc model.Scope, input mealplan.UpsertInput) (mealplan.UpsertOutput, error) {
	if _, err := weekdate.Parse(input.Day); err != nil {
		return mealplan.UpsertOutput{}, mealplan.ErrInvalidDay
	}
	if !validMeals[input.Meal] {
		return mealplan.UpsertOutput{}, mealplan.ErrInvalidMeal
	}

	slot, err := uc.repo.UpsertSlot(ctx, repository.UpsertSlotOptions{
		UserID:   sc.UserID,
		Day:      input.Day,
		Meal:     input.Meal,
		RecipeID: input.RecipeID,
		Note:     input.Note,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertSlot: %v", err)
		return mealplan.UpsertOutput{}, err
	}

	out := mealplan.UpsertOutput{Slot: slot}
	if err := uc.regenerator.Regenerate(ctx, sc, input.Day); err != nil {
		uc.l.Warnf(ctx, "uc.Upsert: grocery regeneration failed for day %s (non-fatal): %v", input.Day, err)
		out.RegenWarning = regenWarning
	}
	return out, nil
}

// ListWeek returns the slots of the week containing input.Week.
func (uc *implUseCase) ListWeek(ctx context.Context, sc model.Scope, input mealplan.ListWeekInput) (mealplan.ListWeekOutput, error) {
	anchor, err := weekdate.Parse(input.Week)
	if err != nil {
		return mealplan.ListWeekOutput{}, mealplan.ErrInvalidDay
	}
	monday := weekdate.Monday(anchor)

	slots, err := uc.repo.ListSlots(ctx, repository.ListSlotsOptions{
		UserID: sc.UserID,
		From:   weekdate.Format(monday),
		To:     weekdate.Format(monday.AddDate(0, 0, 6)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWeek ListSlots: %v", err)
		return mealplan.ListWeekOutput{}, err
	}

	return mealplan.ListWeekOutput{
		Week:  weekdate.Format(monday),
		Slots: slots,
	}, nil
}

// Clear removes a slot, then refreshes the week's grocery list.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope, input mealplan.ClearInput) (mealplan.ClearOutput, error) {
	if _, err := weekdate.Parse(input.Day); err != nil {
		return mealplan.ClearOutput{}, mealplan.ErrInvalidDay
	}
	if !validMeals[input.Meal] {
		return mealplan.ClearOutput{}, mealplan.ErrInvalidMeal
	}

	slot, err := uc.repo.GetOneSlot(ctx, repository.GetOneSlotOptions{
		UserID: sc.UserID,
		Day:    input.Day,
		Meal:   input.Meal,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Clear GetOneSlot: %v", err)
		return mealplan.ClearOutput{}, err
	}
	if slot.ID == "" {
		return mealplan.ClearOutput{}, mealplan.ErrSlotNotFound
	}

	if err := uc.repo.DeleteSlot(ctx, repository.DeleteSlotOptions{
		UserID: sc.UserID,
		Day:    input.Day,
		Meal:   input.Meal,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Clear DeleteSlot: %v", err)
		return mealplan.ClearOutput{}, err
	}

	var out mealplan.ClearOutput
	if err := uc.regenerator.Regenerate(ctx, sc, input.Day); err != nil {
		uc.l.Warnf(ctx, "uc.Clear: grocery regeneration failed for day %s (non-fatal): %v", input.Day, err)
		out.RegenWarning = regenWarning
	}
	return out, nil
}
