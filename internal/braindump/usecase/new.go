package usecase

import (
	"time"

	"github.com/priyanka7rc/laya/internal/task"
	pkgLog "github.com/priyanka7rc/laya/pkg/log"
	"github.com/priyanka7rc/laya/pkg/suggest"
)

type implUseCase struct {
	l         pkgLog.Logger
	taskUC    task.UseCase
	suggester suggest.ISuggest // optional, may be nil
	now       func() time.Time
}

// New creates a new brain-dump UseCase instance. suggester may be nil; the
// keyword matcher then owns categorization entirely.
func New(l pkgLog.Logger, taskUC task.UseCase, suggester suggest.ISuggest) *implUseCase {
	return &implUseCase{
		l:         l,
		taskUC:    taskUC,
		suggester: suggester,
		now:       time.Now,
	}
}
