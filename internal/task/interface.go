package task

import (
	"context"

	"github.com/priyanka7rc/laya/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreateBulk inserts all drafts for the scoped user in one batch.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)

	// List returns the user's tasks, filtered and paginated.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Update applies a partial update to one task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes one task.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
