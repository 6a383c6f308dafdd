package repository

// UpsertSlotOptions holds parameters for writing the slot at (user, day, meal).
type UpsertSlotOptions struct {
	UserID   string
	Day      string
	Meal     string
	RecipeID *string
	Note     *string
}

// ListSlotsOptions bounds the slot scan to one user and a date range
// (inclusive, ISO dates).
type ListSlotsOptions struct {
	UserID string
	From   string
	To     string
}

// GetOneSlotOptions identifies one slot position.
type GetOneSlotOptions struct {
	UserID string
	Day    string
	Meal   string
}

// DeleteSlotOptions identifies one slot position to remove.
type DeleteSlotOptions struct {
	UserID string
	Day    string
	Meal   string
}
