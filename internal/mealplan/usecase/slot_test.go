package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/priyanka7rc/laya/internal/mealplan"
	"github.com/priyanka7rc/laya/internal/mealplan/repository"
	"github.com/priyanka7rc/laya/internal/model"
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
	slot     mealplan.Slot
	slots    []mealplan.Slot
	failOn   string
	upserted *repository.UpsertSlotOptions
	deleted  *repository.DeleteSlotOptions
	listed   *repository.ListSlotsOptions
}

func (m *mockRepo) UpsertSlot(ctx context.Context, opt repository.UpsertSlotOptions) (mealplan.Slot, error) {
	if m.failOn == "upsert" {
		return mealplan.Slot{}, errors.New("db error")
	}
	m.upserted = &opt
	return mealplan.Slot{
		ID:       "s1",
		UserID:   opt.UserID,
		Day:      opt.Day,
		Meal:     opt.Meal,
		RecipeID: opt.RecipeID,
		Note:     opt.Note,
	}, nil
}

func (m *mockRepo) ListSlots(ctx context.Context, opt repository.ListSlotsOptions) ([]mealplan.Slot, error) {
	if m.failOn == "list" {
		return nil, errors.New("db error")
	}
	m.listed = &opt
	return m.slots, nil
}

func (m *mockRepo) GetOneSlot(ctx context.Context, opt repository.GetOneSlotOptions) (mealplan.Slot, error) {
	if m.failOn == "get" {
		return mealplan.Slot{}, errors.New("db error")
	}
	return m.slot, nil
}

func (m *mockRepo) DeleteSlot(ctx context.Context, opt repository.DeleteSlotOptions) error {
	if m.failOn == "delete" {
		return errors.New("db error")
	}
	m.deleted = &opt
	return nil
}

type mockRegenerator struct {
	fail  bool
	calls []string
}

func (m *mockRegenerator) Regenerate(ctx context.Context, sc model.Scope, anchorDate string) error {
	m.calls = append(m.calls, anchorDate)
	if m.fail {
		return errors.New("regen error")
	}
	return nil
}

func TestUpsert(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	rid := "r1"

	t.Run("writes the slot and regenerates the week", func(t *testing.T) {
		repo := &mockRepo{}
		regen := &mockRegenerator{}
		uc := New(repo, regen, &mockLogger{})

		out, err := uc.Upsert(context.Background(), sc, mealplan.UpsertInput{
			Day:      "2024-05-01",
			Meal:     mealplan.MealDinner,
			RecipeID: &rid,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Slot.ID == "" {
			t.Error("expected a persisted slot")
		}
		if out.RegenWarning != "" {
			t.Errorf("unexpected warning: %q", out.RegenWarning)
		}
		if len(regen.calls) != 1 || regen.calls[0] != "2024-05-01" {
			t.Errorf("regenerator calls = %v, want one call for the slot's day", regen.calls)
		}
	})

	t.Run("regeneration failure keeps the slot and warns", func(t *testing.T) {
		repo := &mockRepo{}
		regen := &mockRegenerator{fail: true}
		uc := New(repo, regen, &mockLogger{})

		out, err := uc.Upsert(context.Background(), sc, mealplan.UpsertInput{
			Day:  "2024-05-01",
			Meal: mealplan.MealLunch,
		})
		if err != nil {
			t.Fatalf("slot write must not fail on regen error, got: %v", err)
		}
		if repo.upserted == nil {
			t.Fatal("expected the slot to be written")
		}
		if out.RegenWarning == "" {
			t.Error("expected a regeneration warning")
		}
	})

	t.Run("invalid day", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockRegenerator{}, &mockLogger{})
		_, err := uc.Upsert(context.Background(), sc, mealplan.UpsertInput{Day: "May 1st", Meal: mealplan.MealDinner})
		if !errors.Is(err, mealplan.ErrInvalidDay) {
			t.Fatalf("expected ErrInvalidDay, got %v", err)
		}
	})

	t.Run("invalid meal", func(t *testing.T) {
		regen := &mockRegenerator{}
		uc := New(&mockRepo{}, regen, &mockLogger{})
		_, err := uc.Upsert(context.Background(), sc, mealplan.UpsertInput{Day: "2024-05-01", Meal: "brunch"})
		if !errors.Is(err, mealplan.ErrInvalidMeal) {
			t.Fatalf("expected ErrInvalidMeal, got %v", err)
		}
		if len(regen.calls) != 0 {
			t.Error("no regeneration for rejected input")
		}
	})

	t.Run("repository failure skips regeneration", func(t *testing.T) {
		regen := &mockRegenerator{}
		uc := New(&mockRepo{failOn: "upsert"}, regen, &mockLogger{})
		_, err := uc.Upsert(context.Background(), sc, mealplan.UpsertInput{Day: "2024-05-01", Meal: mealplan.MealDinner})
		if err == nil {
			t.Fatal("expected error")
		}
		if len(regen.calls) != 0 {
			t.Error("no regeneration after a failed write")
		}
	})
}

func TestListWeek(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("resolves monday to sunday", func(t *testing.T) {
		repo := &mockRepo{slots: []mealplan.Slot{{ID: "s1"}}}
		uc := New(repo, &mockRegenerator{}, &mockLogger{})

		out, err := uc.ListWeek(context.Background(), sc, mealplan.ListWeekInput{Week: "2024-05-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Week != "2024-04-29" {
			t.Errorf("week = %q, want 2024-04-29", out.Week)
		}
		if repo.listed.From != "2024-04-29" || repo.listed.To != "2024-05-05" {
			t.Errorf("range = %s..%s, want 2024-04-29..2024-05-05", repo.listed.From, repo.listed.To)
		}
	})

	t.Run("invalid week date", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockRegenerator{}, &mockLogger{})
		_, err := uc.ListWeek(context.Background(), sc, mealplan.ListWeekInput{Week: "nope"})
		if !errors.Is(err, mealplan.ErrInvalidDay) {
			t.Fatalf("expected ErrInvalidDay, got %v", err)
		}
	})
}

func TestClear(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("deletes and regenerates", func(t *testing.T) {
		repo := &mockRepo{slot: mealplan.Slot{ID: "s1", Day: "2024-05-01", Meal: mealplan.MealDinner}}
		regen := &mockRegenerator{}
		uc := New(repo, regen, &mockLogger{})

		out, err := uc.Clear(context.Background(), sc, mealplan.ClearInput{Day: "2024-05-01", Meal: mealplan.MealDinner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deleted == nil {
			t.Fatal("expected the slot to be deleted")
		}
		if len(regen.calls) != 1 {
			t.Errorf("regenerator calls = %v, want one", regen.calls)
		}
		if out.RegenWarning != "" {
			t.Errorf("unexpected warning: %q", out.RegenWarning)
		}
	})

	t.Run("missing slot", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockRegenerator{}, &mockLogger{})
		_, err := uc.Clear(context.Background(), sc, mealplan.ClearInput{Day: "2024-05-01", Meal: mealplan.MealDinner})
		if !errors.Is(err, mealplan.ErrSlotNotFound) {
			t.Fatalf("expected ErrSlotNotFound, got %v", err)
		}
	})

	t.Run("regeneration failure still clears", func(t *testing.T) {
		repo := &mockRepo{slot: mealplan.Slot{ID: "s1"}}
		regen := &mockRegenerator{fail: true}
		uc := New(repo, regen, &mockLogger{})

		out, err := uc.Clear(context.Background(), sc, mealplan.ClearInput{Day: "2024-05-01", Meal: mealplan.MealBreakfast})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RegenWarning == "" {
			t.Error("expected a regeneration warning")
		}
	})
}
