package http

import (
	"time"

	"github.com/priyanka7rc/laya/internal/braindump"
	"github.com/priyanka7rc/laya/internal/task"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required"`
}

func (r parseReq) toInput() braindump.ParseInput {
	return braindump.ParseInput{Text: r.Text}
}

func (r parseReq) toCreateInput() braindump.CreateFromDumpInput {
	return braindump.CreateFromDumpInput{Text: r.Text}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title    string  `json:"title"`
	Notes    *string `json:"notes,omitempty"`
	DueDate  string  `json:"due_date"`
	DueTime  string  `json:"due_time"`
	Category string  `json:"category"`
}

func newParsedTaskResp(t braindump.ParsedTask) parsedTaskResp {
	return parsedTaskResp{
		Title:    t.Title,
		Notes:    t.Notes,
		DueDate:  t.DueDate,
		DueTime:  t.DueTime,
		Category: t.Category,
	}
}

type parseResp struct {
	Tasks   []parsedTaskResp `json:"tasks"`
	Summary string           `json:"summary"`
}

func newParseResp(out braindump.ParseOutput) parseResp {
	tasks := make([]parsedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newParsedTaskResp(t)
	}
	return parseResp{Tasks: tasks, Summary: out.Summary}
}

type taskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     *string   `json:"notes,omitempty"`
	DueDate   string    `json:"due_date"`
	DueTime   string    `json:"due_time"`
	Category  string    `json:"category"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		DueDate:   t.DueDate,
		DueTime:   t.DueTime,
		Category:  t.Category,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type createResp struct {
	Tasks   []taskResp `json:"tasks"`
	Summary string     `json:"summary"`
}

func newCreateResp(out braindump.CreateFromDumpOutput) createResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return createResp{Tasks: tasks, Summary: out.Summary}
}
