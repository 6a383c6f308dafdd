package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the capture text body. Both endpoints
// share the same request shape.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
