package usecase

import (
	"github.com/priyanka7rc/laya/internal/grocery/repository"
	pkgLog "github.com/priyanka7rc/laya/pkg/log"
)

// implUseCase is the private implementation of grocery.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     pkgLog.Logger
	locks *weekLocks
}

// New creates a new grocery UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		locks: newWeekLocks(),
	}
}
