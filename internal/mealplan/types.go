package mealplan

import "time"

// Slot is one meal-plan cell: a (day, meal) position optionally pointing at a
// recipe.
type Slot struct {
	ID        string
	UserID    string
	Day       string // YYYY-MM-DD
	Meal      string // breakfast, lunch, dinner, snack
	RecipeID  *string
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Meal slot names.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// UpsertInput creates or overwrites the slot at (Day, Meal).
type UpsertInput struct {
	Day      string
	Meal     string
	RecipeID *string
	Note     *string
}

// UpsertOutput holds the written slot. RegenWarning is non-empty when the
// slot was saved but the grocery-list refresh failed; the slot write is never
// rolled back for a failed refresh.
type UpsertOutput struct {
	Slot         Slot
	RegenWarning string
}

// ListWeekInput selects the week containing Week (any date inside it).
type ListWeekInput struct {
	Week string
}

// ListWeekOutput is one week of slots.
type ListWeekOutput struct {
	Week  string // resolved Monday
	Slots []Slot
}

// ClearInput removes the slot at (Day, Meal).
type ClearInput struct {
	Day  string
	Meal string
}

// ClearOutput reports the grocery-list refresh outcome, as for Upsert.
type ClearOutput struct {
	RegenWarning string
}
