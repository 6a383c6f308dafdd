package usecase

import (
	"context"
	"strings"

	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/task"
	"github.com/priyanka7rc/laya/internal/task/repository"
)

// CreateBulk inserts all drafts for the scoped user in one batch.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if len(input.Tasks) == 0 {
		return task.CreateBulkOutput{}, task.ErrNoTasks
	}

	opts := make([]repository.CreateTaskOptions, 0, len(input.Tasks))
	for _, draft := range input.Tasks {
		if strings.TrimSpace(draft.Title) == "" {
			return task.CreateBulkOutput{}, task.ErrEmptyTitle
		}
		opts = append(opts, repository.CreateTaskOptions{
			UserID:   sc.UserID,
			Title:    draft.Title,
			Notes:    draft.Notes,
			DueDate:  draft.DueDate,
			DueTime:  draft.DueTime,
			Category: draft.Category,
		})
	}

	created, err := uc.repo.CreateTasksBatch(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBulk CreateTasksBatch: %v", err)
		return task.CreateBulkOutput{}, err
	}

	return task.CreateBulkOutput{Tasks: created}, nil
}
