package repository

import "github.com/priyanka7rc/laya/internal/grocery"

// ListWeekRecipeIDsOptions bounds the meal-plan scan to one user and one
// week's [From, To] date range (inclusive, ISO dates).
type ListWeekRecipeIDsOptions struct {
	UserID string
	From   string
	To     string
}

// DeleteWeekItemsOptions identifies a (user, week) list to clear.
type DeleteWeekItemsOptions struct {
	UserID string
	Week   string
}

// ReplaceWeekItemsOptions swaps the (user, week) list for Items.
type ReplaceWeekItemsOptions struct {
	UserID string
	Week   string
	Items  []grocery.AggregatedItem
}

// ListItemsOptions selects a (user, week) list.
type ListItemsOptions struct {
	UserID string
	Week   string
}

// GetOneItemOptions identifies one item.
type GetOneItemOptions struct {
	UserID string
	ID     string
}

// SetItemCheckedOptions updates one item's checked flag.
type SetItemCheckedOptions struct {
	UserID  string
	ID      string
	Checked bool
}

// DeleteItemOptions identifies one item to remove.
type DeleteItemOptions struct {
	UserID string
	ID     string
}
