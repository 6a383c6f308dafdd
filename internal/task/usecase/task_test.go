package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/task"
	"github.com/priyanka7rc/laya/internal/task/repository"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	existing task.Task
	failOn   string
	deleted  *repository.DeleteTaskOptions
	updated  *repository.UpdateTaskOptions
}

func (m *mockRepo) CreateTasksBatch(ctx context.Context, opts []repository.CreateTaskOptions) ([]task.Task, error) {
	if m.failOn == "create" {
		return nil, errors.New("db error")
	}
	tasks := make([]task.Task, 0, len(opts))
	for i, o := range opts {
		tasks = append(tasks, task.Task{
			ID:       string(rune('a' + i)),
			UserID:   o.UserID,
			Title:    o.Title,
			DueDate:  o.DueDate,
			DueTime:  o.DueTime,
			Category: o.Category,
		})
	}
	return tasks, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (task.Task, error) {
	if m.failOn == "get" {
		return task.Task{}, errors.New("db error")
	}
	return m.existing, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]task.Task, int, error) {
	if m.failOn == "list" {
		return nil, 0, errors.New("db error")
	}
	return []task.Task{m.existing}, 1, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (task.Task, error) {
	if m.failOn == "update" {
		return task.Task{}, errors.New("db error")
	}
	m.updated = &opt
	out := m.existing
	if opt.Title != "" {
		out.Title = opt.Title
	}
	if opt.Done != nil {
		out.Done = *opt.Done
	}
	return out, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	if m.failOn == "delete" {
		return errors.New("db error")
	}
	m.deleted = &opt
	return nil
}

func TestCreateBulk(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("inserts all drafts", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		out, err := uc.CreateBulk(context.Background(), sc, task.CreateBulkInput{
			Tasks: []task.CreateTaskInput{
				{Title: "Buy milk", DueDate: "2024-05-01", DueTime: "20:00:00", Category: "Shopping"},
				{Title: "Call mom", DueDate: "2024-05-02", DueTime: "18:00:00", Category: "Personal"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(out.Tasks))
		}
		if out.Tasks[0].UserID != "u1" {
			t.Errorf("task user = %q, want scoped user", out.Tasks[0].UserID)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.CreateBulk(context.Background(), sc, task.CreateBulkInput{})
		if !errors.Is(err, task.ErrNoTasks) {
			t.Fatalf("expected ErrNoTasks, got %v", err)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.CreateBulk(context.Background(), sc, task.CreateBulkInput{
			Tasks: []task.CreateTaskInput{{Title: "   "}},
		})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		uc := New(&mockRepo{failOn: "create"}, &mockLogger{})
		_, err := uc.CreateBulk(context.Background(), sc, task.CreateBulkInput{
			Tasks: []task.CreateTaskInput{{Title: "Buy milk"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestUpdate(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	done := true

	t.Run("partial update", func(t *testing.T) {
		repo := &mockRepo{existing: task.Task{ID: "t1", Title: "Old title"}}
		uc := New(repo, &mockLogger{})

		out, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: "t1", Done: &done})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Done {
			t.Error("task should be done")
		}
		if out.Task.Title != "Old title" {
			t.Errorf("untouched title changed to %q", out.Task.Title)
		}
		if repo.updated.UserID != "u1" {
			t.Errorf("update not scoped to user: %q", repo.updated.UserID)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: "nope", Done: &done})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("deletes existing", func(t *testing.T) {
		repo := &mockRepo{existing: task.Task{ID: "t1"}}
		uc := New(repo, &mockLogger{})
		if err := uc.Delete(context.Background(), sc, "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deleted == nil || repo.deleted.ID != "t1" {
			t.Errorf("delete options = %+v", repo.deleted)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		err := uc.Delete(context.Background(), sc, "nope")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
