package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/mealplan"
	"github.com/priyanka7rc/laya/pkg/log"
)

// Handler is the public interface for the meal-plan HTTP delivery layer.
type Handler interface {
	Upsert(c *gin.Context)
	ListWeek(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc mealplan.UseCase
}

// New creates a new HTTP handler for the meal-plan domain.
func New(l log.Logger, uc mealplan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
