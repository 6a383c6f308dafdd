package usecase

import (
	"github.com/priyanka7rc/laya/internal/grocery"
	"github.com/priyanka7rc/laya/internal/mealplan/repository"
	pkgLog "github.com/priyanka7rc/laya/pkg/log"
)

// implUseCase is the private implementation of mealplan.UseCase.
type implUseCase struct {
	repo        repository.Repository
	regenerator grocery.Regenerator
	l           pkgLog.Logger
}

// New creates a new meal-plan UseCase implementation.
func New(repo repository.Repository, regenerator grocery.Regenerator, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		regenerator: regenerator,
		l:           l,
	}
}
