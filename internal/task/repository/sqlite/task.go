package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/priyanka7rc/laya/internal/task"
	repo "github.com/priyanka7rc/laya/internal/task/repository"
)

const timeLayout = time.RFC3339

// CreateTasksBatch inserts all drafts in one transaction. Either every row is
// inserted or none are.
func (r *implRepository) CreateTasksBatch(ctx context.Context, opts []repo.CreateTaskOptions) ([]task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTasksBatch"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO tasks (id, user_id, title, notes, due_date, due_time, category, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("CreateTasksBatch"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer stmt.Close()

	now := time.Now().UTC()
	created := make([]task.Task, 0, len(opts))
	for _, opt := range opts {
		id := uuid.NewString()
		if _, err := stmt.ExecContext(ctx,
			id, opt.UserID, opt.Title, nullableString(opt.Notes),
			opt.DueDate, opt.DueTime, opt.Category,
			now.Format(timeLayout), now.Format(timeLayout),
		); err != nil {
			r.l.Errorf(ctx, "%s exec: %v", r.dsn("CreateTasksBatch"), err)
			return nil, repo.ErrFailedToInsert
		}
		created = append(created, task.Task{
			ID:        id,
			UserID:    opt.UserID,
			Title:     opt.Title,
			Notes:     opt.Notes,
			DueDate:   opt.DueDate,
			DueTime:   opt.DueTime,
			Category:  opt.Category,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTasksBatch"), err)
		return nil, repo.ErrFailedToInsert
	}
	return created, nil
}

// GetOneTask retrieves a single task. Zero-value Task when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	const query = `
		SELECT id, user_id, title, notes, due_date, due_time, category, done, created_at, updated_at
		FROM tasks WHERE user_id = ? AND id = ? LIMIT 1`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.UserID, opt.ID))
	if err == sql.ErrNoRows {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a filtered, paginated list and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, int, error) {
	where, args := buildListWhere(opt)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, title, notes, due_date, due_time, category, done, created_at, updated_at
		FROM tasks WHERE %s ORDER BY due_date, due_time`, where)
	pagedArgs := args
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		pagedArgs = append(pagedArgs, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, pagedArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask applies a partial update and returns the updated row.
// Zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	set, args := buildUpdateSet(opt)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE user_id = ? AND id = ?`, set)
	args = append(args, opt.UserID, opt.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return task.Task{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: opt.UserID, ID: opt.ID})
}

// DeleteTask removes a task scoped to its user.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE user_id = ? AND id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (task.Task, error) {
	var (
		t          task.Task
		notes      sql.NullString
		done       int
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &notes, &t.DueDate, &t.DueTime, &t.Category,
		&done, &createdAt, &updatedAt,
	); err != nil {
		return task.Task{}, err
	}
	if notes.Valid {
		t.Notes = &notes.String
	}
	t.Done = done != 0
	t.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	t.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return t, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
