package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNoTasks      = errors.New("no tasks to create")
	ErrEmptyTitle   = errors.New("task title is required")
)
