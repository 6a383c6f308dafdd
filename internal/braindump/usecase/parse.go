package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/priyanka7rc/laya/internal/braindump"
	"github.com/priyanka7rc/laya/pkg/suggest"
)

// Parse converts free-form capture text into task drafts.
func (uc *implUseCase) Parse(ctx context.Context, input braindump.ParseInput) (braindump.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return braindump.ParseOutput{}, braindump.ErrEmptyText
	}
	return parseText(input.Text, uc.now()), nil
}

// parseText is the pure parsing core: deterministic given text and now.
func parseText(text string, now time.Time) braindump.ParseOutput {
	segments := splitSegments(text)

	// Nothing survived segmentation (e.g. the text is all separators):
	// produce one low-information draft from the whole input.
	if len(segments) == 0 {
		return braindump.ParseOutput{
			Tasks: []braindump.ParsedTask{{
				Title:    truncate(strings.TrimSpace(text), maxTitleLen),
				DueDate:  todayDate(now),
				DueTime:  defaultDueTime,
				Category: suggest.DefaultCategory,
			}},
			Summary: "Extracted 1 task",
		}
	}

	tasks := make([]braindump.ParsedTask, 0, len(segments))
	for _, segment := range segments {
		tasks = append(tasks, parseSegment(segment, now))
	}

	return braindump.ParseOutput{
		Tasks:   tasks,
		Summary: fmt.Sprintf("Extracted %d task(s) from your brain dump", len(tasks)),
	}
}

// splitSegments splits capture text on commas, semicolons, or the standalone
// word "and", dropping empty pieces.
func splitSegments(text string) []string {
	var segments []string
	for _, piece := range segmentRe.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			segments = append(segments, piece)
		}
	}
	return segments
}

// parseSegment extracts scheduling intent from one segment and assembles a
// draft. Missing pieces fall back to today / the default evening time.
func parseSegment(segment string, now time.Time) braindump.ParsedTask {
	dueTime, ok := extractTime(segment)
	if !ok {
		dueTime = defaultDueTime
	}

	dueDate, ok := extractDate(segment, now)
	if !ok {
		dueDate = todayDate(now)
	}

	return braindump.ParsedTask{
		Title:    cleanTitle(segment),
		DueDate:  dueDate,
		DueTime:  dueTime,
		Category: guessCategory(segment),
	}
}

func todayDate(now time.Time) string {
	return now.Format("2006-01-02")
}
