package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/task"
	"github.com/priyanka7rc/laya/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrNoTasks),
		errors.Is(err, task.ErrEmptyTitle):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
