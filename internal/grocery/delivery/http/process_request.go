package http

import (
	"github.com/gin-gonic/gin"
)

// processWeekReq binds the week query parameter shared by List and Regenerate.
func (h *handler) processWeekReq(c *gin.Context) (weekReq, error) {
	var req weekReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetCheckedReq binds the checked body plus the URI param.
func (h *handler) processSetCheckedReq(c *gin.Context) (setCheckedReq, error) {
	var req setCheckedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}
