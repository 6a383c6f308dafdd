package usecase

import (
	"github.com/priyanka7rc/laya/internal/recipe/repository"
	pkgLog "github.com/priyanka7rc/laya/pkg/log"
)

// implUseCase is the private implementation of recipe.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates a new recipe UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
