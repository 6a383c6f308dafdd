package task

import "time"

// Task is a persisted to-do row.
type Task struct {
	ID        string
	UserID    string
	Title     string
	Notes     *string
	DueDate   string // YYYY-MM-DD
	DueTime   string // HH:MM:SS
	Category  string
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTaskInput is one draft in a bulk insert.
type CreateTaskInput struct {
	Title    string
	Notes    *string
	DueDate  string
	DueTime  string
	Category string
}

// CreateBulkInput is the input for bulk task creation.
type CreateBulkInput struct {
	Tasks []CreateTaskInput
}

// CreateBulkOutput is the result of bulk task creation.
type CreateBulkOutput struct {
	Tasks []Task
}

// ListInput filters and paginates the task list.
type ListInput struct {
	Category string
	DueDate  string
	Done     *bool
	Limit    int
	Offset   int
}

// ListOutput is the paginated task list.
type ListOutput struct {
	Tasks  []Task
	Total  int
	Limit  int
	Offset int
}

// UpdateInput holds a partial task update. Nil/empty fields are left as-is.
type UpdateInput struct {
	ID       string
	Title    string
	Notes    *string
	DueDate  string
	DueTime  string
	Category string
	Done     *bool
}

// UpdateOutput holds the updated task.
type UpdateOutput struct {
	Task Task
}
