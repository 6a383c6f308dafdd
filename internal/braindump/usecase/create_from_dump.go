package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/priyanka7rc/laya/internal/braindump"
	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/internal/task"
	"github.com/priyanka7rc/laya/pkg/suggest"
)

// CreateFromDump parses capture text and bulk-inserts the drafts as tasks.
func (uc *implUseCase) CreateFromDump(ctx context.Context, sc model.Scope, input braindump.CreateFromDumpInput) (braindump.CreateFromDumpOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return braindump.CreateFromDumpOutput{}, braindump.ErrEmptyText
	}

	uc.l.Infof(ctx, "CreateFromDump: user=%s input_length=%d", sc.UserID, len(input.Text))

	parsed := parseText(input.Text, uc.now())

	drafts := make([]task.CreateTaskInput, 0, len(parsed.Tasks))
	for _, p := range parsed.Tasks {
		drafts = append(drafts, task.CreateTaskInput{
			Title:    p.Title,
			Notes:    p.Notes,
			DueDate:  p.DueDate,
			DueTime:  p.DueTime,
			Category: uc.refineCategory(ctx, p),
		})
	}

	out, err := uc.taskUC.CreateBulk(ctx, sc, task.CreateBulkInput{Tasks: drafts})
	if err != nil {
		return braindump.CreateFromDumpOutput{}, fmt.Errorf("failed to persist parsed tasks: %w", err)
	}

	uc.l.Infof(ctx, "CreateFromDump: created %d tasks for user=%s", len(out.Tasks), sc.UserID)

	return braindump.CreateFromDumpOutput{
		Tasks:   out.Tasks,
		Summary: parsed.Summary,
	}, nil
}

// refineCategory asks the suggestion service for a better label when the
// keyword matcher fell through to the generic one. Best effort: any failure
// keeps the fallback.
func (uc *implUseCase) refineCategory(ctx context.Context, p braindump.ParsedTask) string {
	if p.Category != suggest.DefaultCategory || uc.suggester == nil {
		return p.Category
	}

	label, err := uc.suggester.SuggestCategory(ctx, p.Title)
	if err != nil {
		uc.l.Warnf(ctx, "CreateFromDump: category suggestion failed (non-fatal): %v", err)
		return p.Category
	}
	if label == "" {
		return p.Category
	}
	return label
}
