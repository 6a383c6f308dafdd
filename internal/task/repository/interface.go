package repository

import (
	"context"

	"github.com/priyanka7rc/laya/internal/task"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	// CreateTasksBatch inserts all drafts in a single transaction.
	CreateTasksBatch(ctx context.Context, opts []CreateTaskOptions) ([]task.Task, error)

	// GetOneTask retrieves a single task by the provided filters. Returns a
	// zero-value Task (ID == "") when not found — not an error.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (task.Task, error)

	// ListTasks returns a filtered, paginated list and the total count.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, int, error)

	// UpdateTask applies a partial update and returns the updated row.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)

	// DeleteTask removes a task scoped to its user.
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}
