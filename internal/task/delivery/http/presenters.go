package http

import (
	"time"

	"github.com/priyanka7rc/laya/internal/task"
)

// --- Request DTOs ---

type taskDraftReq struct {
	Title    string  `json:"title"    binding:"required,min=1,max=100"`
	Notes    *string `json:"notes"    binding:"omitempty,max=1000"`
	DueDate  string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DueTime  string  `json:"due_time" binding:"omitempty,datetime=15:04:05"`
	Category string  `json:"category" binding:"omitempty,max=50"`
}

type createReq struct {
	Tasks []taskDraftReq `json:"tasks" binding:"required,min=1,dive"`
}

func (r createReq) toInput() task.CreateBulkInput {
	drafts := make([]task.CreateTaskInput, len(r.Tasks))
	for i, d := range r.Tasks {
		drafts[i] = task.CreateTaskInput{
			Title:    d.Title,
			Notes:    d.Notes,
			DueDate:  d.DueDate,
			DueTime:  d.DueTime,
			Category: d.Category,
		}
	}
	return task.CreateBulkInput{Tasks: drafts}
}

// ---

type listReq struct {
	Category string `form:"category"`
	DueDate  string `form:"due_date"`
	Done     *bool  `form:"done"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Category: r.Category,
		DueDate:  r.DueDate,
		Done:     r.Done,
		Limit:    limit,
		Offset:   offset,
	}
}

// ---

type updateReq struct {
	ID       string  `json:"-"` // populated from URI param
	Title    string  `json:"title"    binding:"omitempty,min=1,max=100"`
	Notes    *string `json:"notes"    binding:"omitempty,max=1000"`
	DueDate  string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DueTime  string  `json:"due_time" binding:"omitempty,datetime=15:04:05"`
	Category string  `json:"category" binding:"omitempty,max=50"`
	Done     *bool   `json:"done"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:       r.ID,
		Title:    r.Title,
		Notes:    r.Notes,
		DueDate:  r.DueDate,
		DueTime:  r.DueTime,
		Category: r.Category,
		Done:     r.Done,
	}
}

// --- Response DTOs ---

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
	Tasks []taskResp `json:"tasks"`
}

func newCreateResp(out task.CreateBulkOutput) createResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return createResp{Tasks: tasks}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
