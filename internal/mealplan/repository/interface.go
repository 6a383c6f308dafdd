package repository

import (
	"context"

	"github.com/priyanka7rc/laya/internal/mealplan"
)

// Repository defines all data access methods for meal-plan slots.
type Repository interface {
	// UpsertSlot creates or overwrites the slot at (user, day, meal).
	UpsertSlot(ctx context.Context, opt UpsertSlotOptions) (mealplan.Slot, error)

	// ListSlots returns the user's slots with day in [From, To].
	ListSlots(ctx context.Context, opt ListSlotsOptions) ([]mealplan.Slot, error)

	// GetOneSlot returns a zero-value Slot (ID == "") when not found.
	GetOneSlot(ctx context.Context, opt GetOneSlotOptions) (mealplan.Slot, error)

	// DeleteSlot removes the slot at (user, day, meal).
	DeleteSlot(ctx context.Context, opt DeleteSlotOptions) error
}
