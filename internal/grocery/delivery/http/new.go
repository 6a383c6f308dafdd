package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/grocery"
	"github.com/priyanka7rc/laya/pkg/log"
)

// Handler is the public interface for the grocery HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Regenerate(c *gin.Context)
	SetChecked(c *gin.Context)
	DeleteItem(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc grocery.UseCase
}

// New creates a new HTTP handler for the grocery domain.
func New(l log.Logger, uc grocery.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
