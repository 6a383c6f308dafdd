package usecase

import (
	"context"

	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/task"
	"github.com/priyanka7rc/laya/internal/task/repository"
)

// List returns the user's tasks, filtered and paginated.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:   sc.UserID,
		Category: input.Category,
		DueDate:  input.DueDate,
		Done:     input.Done,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
