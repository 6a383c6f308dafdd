package repository

import (
	"context"

	"github.com/priyanka7rc/laya/internal/grocery"
)

// Repository defines the data access the aggregator and list views need.
// Reads span the meal-plan and ingredient tables; writes touch only
// grocery_list_items.
type Repository interface {
	// ListWeekRecipeIDs returns the distinct non-null recipe ids referenced
	// by the user's meal-plan slots in [From, To].
	ListWeekRecipeIDs(ctx context.Context, opt ListWeekRecipeIDsOptions) ([]string, error)

	// ListIngredientsByRecipeIDs returns all ingredient rows of the given
	// recipes in a stable order (one batched read).
	ListIngredientsByRecipeIDs(ctx context.Context, recipeIDs []string) ([]grocery.IngredientRow, error)

	// DeleteWeekItems removes every item for (user, week).
	DeleteWeekItems(ctx context.Context, opt DeleteWeekItemsOptions) error

	// ReplaceWeekItems deletes the (user, week) items and inserts the new set
	// in one transaction.
	ReplaceWeekItems(ctx context.Context, opt ReplaceWeekItemsOptions) error

	// ListItems returns the items for (user, week).
	ListItems(ctx context.Context, opt ListItemsOptions) ([]grocery.Item, error)

	// GetOneItem returns a zero-value Item (ID == "") when not found.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (grocery.Item, error)

	// SetItemChecked updates one item's checked flag.
	SetItemChecked(ctx context.Context, opt SetItemCheckedOptions) (grocery.Item, error)

	// DeleteItem removes one item.
	DeleteItem(ctx context.Context, opt DeleteItemOptions) error
}
