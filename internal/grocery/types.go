package grocery

import "time"

// Item is one persisted grocery-list row for a week.
type Item struct {
	ID         string
	UserID     string
	SourceWeek string // Monday anchoring the week, YYYY-MM-DD
	Name       string // display name, first-seen casing
	Qty        *float64
	Unit       *string
	Checked    bool
	CreatedAt  time.Time
}

// IngredientRow is the read model the aggregator consumes: one ingredient
// line of a planned recipe.
type IngredientRow struct {
	Name string
	Qty  *float64
	Unit *string
}

// AggregatedItem is one merged (name, unit) bucket before persistence.
// Qty is nil when the summed quantity is zero — absent quantities must not
// render as "0".
type AggregatedItem struct {
	Name string
	Qty  *float64
	Unit *string
}

// ListInput selects a week's grocery list. Week may be any date inside the
// target week.
type ListInput struct {
	Week string
}

// ListOutput is a week's grocery list.
type ListOutput struct {
	Week  string // resolved Monday
	Items []Item
}

// SetCheckedInput toggles the checked state of one item.
type SetCheckedInput struct {
	ID      string
	Checked bool
}

// SetCheckedOutput holds the updated item.
type SetCheckedOutput struct {
	Item Item
}
