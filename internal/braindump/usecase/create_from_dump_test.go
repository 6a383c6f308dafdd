package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/priyanka7rc/laya/internal/braindump"
	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/task"
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

type mockTaskUC struct {
	fail    bool
	created []task.CreateTaskInput
}

func (m *mockTaskUC) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if m.fail {
		return task.CreateBulkOutput{}, errors.New("db error")
	}
	m.created = input.Tasks
	tasks := make([]task.Task, 0, len(input.Tasks))
	for i, d := range input.Tasks {
		tasks = append(tasks, task.Task{
			ID:       string(rune('a' + i)),
			UserID:   sc.UserID,
			Title:    d.Title,
			DueDate:  d.DueDate,
			DueTime:  d.DueTime,
			Category: d.Category,
		})
	}
	return task.CreateBulkOutput{Tasks: tasks}, nil
}

func (m *mockTaskUC) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

func (m *mockTaskUC) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	return task.UpdateOutput{}, nil
}

func (m *mockTaskUC) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

type mockSuggester struct {
	label string
	err   error
	calls []string
}

func (m *mockSuggester) SuggestCategory(ctx context.Context, title string) (string, error) {
	m.calls = append(m.calls, title)
	return m.label, m.err
}

func TestCreateFromDump(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("success path", func(t *testing.T) {
		taskUC := &mockTaskUC{}
		uc := New(&mockLogger{}, taskUC, nil)
		uc.now = func() time.Time { return testNow }

		out, err := uc.CreateFromDump(context.Background(), sc, braindump.CreateFromDumpInput{
			Text: "call mom tomorrow and buy groceries at 5pm",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(out.Tasks))
		}
		if out.Tasks[0].Title != "Call mom" || out.Tasks[1].Title != "Buy groceries" {
			t.Errorf("unexpected titles: %q, %q", out.Tasks[0].Title, out.Tasks[1].Title)
		}
		if out.Summary != "Extracted 2 task(s) from your brain dump" {
			t.Errorf("summary = %q", out.Summary)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockTaskUC{}, nil)
		_, err := uc.CreateFromDump(context.Background(), sc, braindump.CreateFromDumpInput{Text: ""})
		if !errors.Is(err, braindump.ErrEmptyText) {
			t.Fatalf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("persistence failure surfaces", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockTaskUC{fail: true}, nil)
		uc.now = func() time.Time { return testNow }

		_, err := uc.CreateFromDump(context.Background(), sc, braindump.CreateFromDumpInput{Text: "pay rent"})
		if err == nil {
			t.Fatal("expected error from failed persistence")
		}
	})

	t.Run("suggester refines only fallback categories", func(t *testing.T) {
		taskUC := &mockTaskUC{}
		sg := &mockSuggester{label: "Finance"}
		uc := New(&mockLogger{}, taskUC, sg)
		uc.now = func() time.Time { return testNow }

		_, err := uc.CreateFromDump(context.Background(), sc, braindump.CreateFromDumpInput{
			Text: "pay rent, gym at 6pm",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sg.calls) != 1 || sg.calls[0] != "Pay rent" {
			t.Errorf("suggester calls = %v, want one call for the fallback draft", sg.calls)
		}
		if taskUC.created[0].Category != "Finance" {
			t.Errorf("refined category = %q, want Finance", taskUC.created[0].Category)
		}
		if taskUC.created[1].Category != "Fitness" {
			t.Errorf("keyword category = %q, want Fitness", taskUC.created[1].Category)
		}
	})

	t.Run("suggester failure keeps the fallback", func(t *testing.T) {
		taskUC := &mockTaskUC{}
		sg := &mockSuggester{err: errors.New("llm down")}
		uc := New(&mockLogger{}, taskUC, sg)
		uc.now = func() time.Time { return testNow }

		out, err := uc.CreateFromDump(context.Background(), sc, braindump.CreateFromDumpInput{Text: "pay rent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tasks[0].Category != "Brain Dump" {
			t.Errorf("category = %q, want the generic fallback kept", out.Tasks[0].Category)
		}
	})
}
