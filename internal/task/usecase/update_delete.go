package usecase

import (
	"context"

	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/task"
	"github.com/priyanka7rc/laya/internal/task/repository"
)

// Update applies a partial update to one task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: sc.UserID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		UserID:   sc.UserID,
		ID:       input.ID,
		Title:    input.Title,
		Notes:    input.Notes,
		DueDate:  input.DueDate,
		DueTime:  input.DueTime,
		Category: input.Category,
		Done:     input.Done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{UserID: sc.UserID, ID: id}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
