package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/braindump"
	"github.com/priyanka7rc/laya/internal/task"
	"github.com/priyanka7rc/laya/pkg/response"
)

// respondError translates domain errors into HTTP responses. Anything
// unrecognized is a 500 and its detail stays server-side.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, braindump.ErrEmptyText),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrNoTasks):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
