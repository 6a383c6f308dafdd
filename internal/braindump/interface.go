package braindump

import (
	"context"

	"github.com/priyanka7rc/laya/internal/model"
)

// UseCase defines the business logic interface for the brain-dump domain.
type UseCase interface {
	// Parse converts free-form capture text into task drafts. It never fails
	// for non-empty text; unparsable input degrades to one low-information
	// draft.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// CreateFromDump parses capture text and bulk-inserts the drafts as tasks
	// for the scoped user.
	CreateFromDump(ctx context.Context, sc model.Scope, input CreateFromDumpInput) (CreateFromDumpOutput, error)
}
