package grocery

import (
	"context"

	"github.com/priyanka7rc/laya/internal/model"
)

// UseCase defines the business logic interface for the grocery domain.
type UseCase interface {
	// Regenerate fully recomputes and replaces the grocery list for the week
	// containing anchorDate from the week's planned recipes. Idempotent given
	// unchanged meal-plan and recipe data.
	Regenerate(ctx context.Context, sc model.Scope, anchorDate string) error

	// List returns the grocery list for the week containing input.Week.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// SetChecked marks one item as checked or unchecked.
	SetChecked(ctx context.Context, sc model.Scope, input SetCheckedInput) (SetCheckedOutput, error)

	// DeleteItem removes one item by hand (manual list editing).
	DeleteItem(ctx context.Context, sc model.Scope, id string) error
}

// Regenerator is the narrow trigger interface the meal-plan domain depends
// on, so slot edits can refresh the affected week's list.
type Regenerator interface {
	Regenerate(ctx context.Context, sc model.Scope, anchorDate string) error
}
