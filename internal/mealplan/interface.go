package mealplan

import (
	"context"

	"github.com/priyanka7rc/laya/internal/model"
)

// UseCase defines the business logic interface for the meal-plan domain.
// Every successful mutation triggers a grocery-list regeneration for the
// affected week.
type UseCase interface {
	Upsert(ctx context.Context, sc model.Scope, input UpsertInput) (UpsertOutput, error)
	ListWeek(ctx context.Context, sc model.Scope, input ListWeekInput) (ListWeekOutput, error)
	Clear(ctx context.Context, sc model.Scope, input ClearInput) (ClearOutput, error)
}
