package sqlite

import (
	"strings"
	"time"

	repo "github.com/priyanka7rc/laya/internal/recipe/repository"
)

// buildRecipeUpdateSet builds the SET clause + args for UpdateRecipe. Only
// provided fields are written; updated_at always is.
func buildRecipeUpdateSet(opt repo.UpdateRecipeOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != "" {
		sets = append(sets, "title = ?")
		args = append(args, opt.Title)
	}
	if opt.Servings != nil {
		sets = append(sets, "servings = ?")
		args = append(args, *opt.Servings)
	}
	if opt.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *opt.Notes)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(timeLayout))

	return strings.Join(sets, ", "), args
}
