package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/priyanka7rc/laya/internal/braindump"
)

func TestParseText(t *testing.T) {
	t.Run("single segment with time and date", func(t *testing.T) {
		out := parseText("buy groceries tomorrow at 5pm", testNow)
		if len(out.Tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(out.Tasks))
		}
		got := out.Tasks[0]
		if got.Title != "Buy groceries" {
			t.Errorf("title = %q, want %q", got.Title, "Buy groceries")
		}
		if got.DueDate != "2024-05-02" {
			t.Errorf("due date = %q, want %q", got.DueDate, "2024-05-02")
		}
		if got.DueTime != "17:00:00" {
			t.Errorf("due time = %q, want %q", got.DueTime, "17:00:00")
		}
		if got.Category != "Meals" {
			t.Errorf("category = %q, want %q", got.Category, "Meals")
		}
		if out.Summary != "Extracted 1 task(s) from your brain dump" {
			t.Errorf("summary = %q", out.Summary)
		}
	})

	t.Run("splits on commas semicolons and the word and", func(t *testing.T) {
		out := parseText("call mom, gym at 6pm; finish report and buy milk", testNow)
		if len(out.Tasks) != 4 {
			t.Fatalf("expected 4 tasks, got %d", len(out.Tasks))
		}
		wantTitles := []string{"Call mom", "Gym", "Finish report", "Buy milk"}
		for i, want := range wantTitles {
			if out.Tasks[i].Title != want {
				t.Errorf("task %d title = %q, want %q", i, out.Tasks[i].Title, want)
			}
		}
		if out.Summary != "Extracted 4 task(s) from your brain dump" {
			t.Errorf("summary = %q", out.Summary)
		}
	})

	t.Run("defaults when nothing is recognized", func(t *testing.T) {
		out := parseText("something vague", testNow)
		got := out.Tasks[0]
		if got.DueDate != "2024-05-01" {
			t.Errorf("due date = %q, want today", got.DueDate)
		}
		if got.DueTime != defaultDueTime {
			t.Errorf("due time = %q, want %q", got.DueTime, defaultDueTime)
		}
		if got.Category != "Brain Dump" {
			t.Errorf("category = %q, want the generic fallback", got.Category)
		}
	})

	t.Run("category matched per segment not per dump", func(t *testing.T) {
		out := parseText("gym at 7am and dentist appointment friday", testNow)
		if len(out.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(out.Tasks))
		}
		if out.Tasks[0].Category != "Fitness" {
			t.Errorf("task 0 category = %q, want Fitness", out.Tasks[0].Category)
		}
		if out.Tasks[1].Category != "Health" {
			t.Errorf("task 1 category = %q, want Health", out.Tasks[1].Category)
		}
		if out.Tasks[1].DueDate != "2024-05-03" {
			t.Errorf("task 1 due date = %q, want 2024-05-03", out.Tasks[1].DueDate)
		}
	})

	t.Run("all-separator input yields one fallback draft", func(t *testing.T) {
		out := parseText(",,;", testNow)
		if len(out.Tasks) != 1 {
			t.Fatalf("expected 1 fallback task, got %d", len(out.Tasks))
		}
		got := out.Tasks[0]
		if got.Category != "Brain Dump" {
			t.Errorf("category = %q, want the generic fallback", got.Category)
		}
		if got.DueTime != defaultDueTime {
			t.Errorf("due time = %q, want %q", got.DueTime, defaultDueTime)
		}
		if out.Summary != "Extracted 1 task" {
			t.Errorf("summary = %q", out.Summary)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, nil)
		_, err := uc.Parse(context.Background(), braindump.ParseInput{Text: "   "})
		if !errors.Is(err, braindump.ErrEmptyText) {
			t.Fatalf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("fixed clock flows through", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, nil)
		uc.now = func() time.Time { return testNow }

		out, err := uc.Parse(context.Background(), braindump.ParseInput{Text: "pay rent today"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tasks[0].DueDate != "2024-05-01" {
			t.Errorf("due date = %q, want 2024-05-01", out.Tasks[0].DueDate)
		}
	})
}
