package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/recipe"
	"github.com/priyanka7rc/laya/internal/recipe/repository"
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
	existing recipe.Recipe
	failOn   string
	created  *repository.CreateRecipeOptions
	updated  *repository.UpdateRecipeOptions
	deleted  *repository.DeleteRecipeOptions
}

func (m *mockRepo) CreateRecipe(ctx context.Context, opt repository.CreateRecipeOptions) (recipe.Recipe, error) {
	if m.failOn == "create" {
		return recipe.Recipe{}, errors.New("db error")
	}
	m.created = &opt
	ings := make([]recipe.Ingredient, 0, len(opt.Ingredients))
	for i, in := range opt.Ingredients {
		ings = append(ings, recipe.Ingredient{
			ID:   string(rune('a' + i)),
			Name: in.Name,
			Qty:  in.Qty,
			Unit: in.Unit,
		})
	}
	return recipe.Recipe{
		ID:          "r1",
		UserID:      opt.UserID,
		Title:       opt.Title,
		Servings:    opt.Servings,
		Notes:       opt.Notes,
		Ingredients: ings,
	}, nil
}

func (m *mockRepo) GetOneRecipe(ctx context.Context, opt repository.GetOneRecipeOptions) (recipe.Recipe, error) {
	if m.failOn == "get" {
		return recipe.Recipe{}, errors.New("db error")
	}
	return m.existing, nil
}

func (m *mockRepo) ListRecipes(ctx context.Context, opt repository.ListRecipesOptions) ([]recipe.Recipe, int, error) {
	if m.failOn == "list" {
		return nil, 0, errors.New("db error")
	}
	return []recipe.Recipe{m.existing}, 1, nil
}

func (m *mockRepo) UpdateRecipe(ctx context.Context, opt repository.UpdateRecipeOptions) (recipe.Recipe, error) {
	if m.failOn == "update" {
		return recipe.Recipe{}, errors.New("db error")
	}
	m.updated = &opt
	out := m.existing
	if opt.Title != "" {
		out.Title = opt.Title
	}
	return out, nil
}

func (m *mockRepo) DeleteRecipe(ctx context.Context, opt repository.DeleteRecipeOptions) error {
	if m.failOn == "delete" {
		return errors.New("db error")
	}
	m.deleted = &opt
	return nil
}

func fptr(f float64) *float64 { return &f }
func sptr(s string) *string   { return &s }

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("creates with ingredients", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(repo, &mockLogger{})

		out, err := uc.Create(context.Background(), sc, recipe.CreateInput{
			Title: "Pasta",
			Ingredients: []recipe.IngredientInput{
				{Name: "spaghetti", Qty: fptr(500), Unit: sptr("g")},
				{Name: "salt"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Recipe.ID == "" {
			t.Error("expected a persisted recipe")
		}
		if len(out.Recipe.Ingredients) != 2 {
			t.Errorf("expected 2 ingredients, got %d", len(out.Recipe.Ingredients))
		}
		if repo.created.UserID != "u1" {
			t.Errorf("create not scoped to user: %q", repo.created.UserID)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Create(context.Background(), sc, recipe.CreateInput{Title: "  "})
		if !errors.Is(err, recipe.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("found", func(t *testing.T) {
		repo := &mockRepo{existing: recipe.Recipe{ID: "r1", Title: "Pasta"}}
		uc := New(repo, &mockLogger{})
		out, err := uc.Detail(context.Background(), sc, "r1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Recipe.Title != "Pasta" {
			t.Errorf("title = %q", out.Recipe.Title)
		}
	})

	t.Run("missing", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Detail(context.Background(), sc, "nope")
		if !errors.Is(err, recipe.ErrRecipeNotFound) {
			t.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})
}

func TestUpdateRecipe(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("nil ingredients keep the old set", func(t *testing.T) {
		repo := &mockRepo{existing: recipe.Recipe{ID: "r1", Title: "Pasta"}}
		uc := New(repo, &mockLogger{})

		_, err := uc.Update(context.Background(), sc, recipe.UpdateInput{ID: "r1", Title: "Better pasta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.updated.ReplaceIngredients {
			t.Error("nil ingredient input must not trigger a replacement")
		}
	})

	t.Run("empty non-nil ingredients replace with nothing", func(t *testing.T) {
		repo := &mockRepo{existing: recipe.Recipe{ID: "r1"}}
		uc := New(repo, &mockLogger{})

		_, err := uc.Update(context.Background(), sc, recipe.UpdateInput{
			ID:          "r1",
			Ingredients: []recipe.IngredientInput{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.updated.ReplaceIngredients {
			t.Error("an empty non-nil set is still a replacement")
		}
	})

	t.Run("missing recipe", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Update(context.Background(), sc, recipe.UpdateInput{ID: "nope"})
		if !errors.Is(err, recipe.ErrRecipeNotFound) {
			t.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})
}

func TestDeleteRecipe(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("deletes existing", func(t *testing.T) {
		repo := &mockRepo{existing: recipe.Recipe{ID: "r1"}}
		uc := New(repo, &mockLogger{})
		if err := uc.Delete(context.Background(), sc, "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deleted == nil {
			t.Fatal("expected DeleteRecipe to be called")
		}
	})

	t.Run("missing recipe", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		err := uc.Delete(context.Background(), sc, "nope")
		if !errors.Is(err, recipe.ErrRecipeNotFound) {
			t.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})
}
