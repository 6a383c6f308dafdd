package braindump

import "github.com/priyanka7rc/laya/internal/task"

// ParsedTask is a task draft extracted from free-form capture text. It is not
// persisted by the parser itself.
type ParsedTask struct {
	Title    string  // 1-100 characters, scheduling phrases stripped
	Notes    *string // reserved, currently always nil
	DueDate  string  // YYYY-MM-DD, never empty (defaults to today)
	DueTime  string  // HH:MM:SS, never empty (defaults to 20:00:00)
	Category string  // keyword-matched label or the generic fallback
}

// ParseInput is the input for parsing capture text.
type ParseInput struct {
	Text string
}

// ParseOutput is the parser result.
type ParseOutput struct {
	Tasks   []ParsedTask
	Summary string
}

// CreateFromDumpInput parses capture text and persists the resulting tasks.
type CreateFromDumpInput struct {
	Text string
}

// CreateFromDumpOutput holds the persisted tasks.
type CreateFromDumpOutput struct {
	Tasks   []task.Task
	Summary string
}
