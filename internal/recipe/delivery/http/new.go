package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/recipe"
	"github.com/priyanka7rc/laya/pkg/log"
)

// Handler is the public interface for the recipe HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recipe.UseCase
}

// New creates a new HTTP handler for the recipe domain.
func New(l log.Logger, uc recipe.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
