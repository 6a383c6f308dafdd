package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/braindump"
	"github.com/priyanka7rc/laya/pkg/log"
)

// Handler is the public interface for the brain-dump HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Create(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc braindump.UseCase
}

// New creates a new HTTP handler for the brain-dump domain.
func New(l log.Logger, uc braindump.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
