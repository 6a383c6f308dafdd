package usecase

import (
	"github.com/priyanka7rc/laya/internal/task/repository"
	pkgLog "github.com/priyanka7rc/laya/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
