package sqlite

import (
	"strings"
	"time"

	repo "github.com/priyanka7rc/laya/internal/task/repository"
)

// buildListWhere builds the WHERE clause + args for ListTasks.
// UserID is always present; other non-empty fields are ANDed in.
func buildListWhere(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.DueDate != "" {
		conditions = append(conditions, "due_date = ?")
		args = append(args, opt.DueDate)
	}
	if opt.Done != nil {
		conditions = append(conditions, "done = ?")
		args = append(args, boolToInt(*opt.Done))
	}

	return strings.Join(conditions, " AND "), args
}

// buildUpdateSet builds the SET clause + args for UpdateTask. Only provided
// fields are written; updated_at always is.
func buildUpdateSet(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != "" {
		sets = append(sets, "title = ?")
		args = append(args, opt.Title)
	}
	if opt.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *opt.Notes)
	}
	if opt.DueDate != "" {
		sets = append(sets, "due_date = ?")
		args = append(args, opt.DueDate)
	}
	if opt.DueTime != "" {
		sets = append(sets, "due_time = ?")
		args = append(args, opt.DueTime)
	}
	if opt.Category != "" {
		sets = append(sets, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.Done != nil {
		sets = append(sets, "done = ?")
		args = append(args, boolToInt(*opt.Done))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(timeLayout))

	return strings.Join(sets, ", "), args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
