package suggest

import "context"

// ISuggest is the interface for the category suggestion service.
type ISuggest interface {
	// SuggestCategory asks the completion service for a single category label
	// for the given task text. Best effort: callers must fall back to
	// DefaultCategory on any error.
	SuggestCategory(ctx context.Context, text string) (string, error)
}
