package repository

// CreateTaskOptions holds parameters for inserting a new task row.
type CreateTaskOptions struct {
	UserID   string
	Title    string
	Notes    *string
	DueDate  string
	DueTime  string
	Category string
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	UserID string
	ID     string
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
type ListTasksOptions struct {
	UserID   string
	Category string
	DueDate  string
	Done     *bool
	Limit    int
	Offset   int
}

// UpdateTaskOptions holds parameters for a partial task update. Empty string
// / nil fields are not touched.
type UpdateTaskOptions struct {
	UserID   string
	ID       string
	Title    string
	Notes    *string
	DueDate  string
	DueTime  string
	Category string
	Done     *bool
}

// DeleteTaskOptions identifies the task row to remove.
type DeleteTaskOptions struct {
	UserID string
	ID     string
}
