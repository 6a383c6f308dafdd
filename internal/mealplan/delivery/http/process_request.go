package http

import (
	"github.com/gin-gonic/gin"
)

// processUpsertReq binds the slot upsert body.
func (h *handler) processUpsertReq(c *gin.Context) (upsertReq, error) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListWeekReq binds the week query parameter.
func (h *handler) processListWeekReq(c *gin.Context) (listWeekReq, error) {
	var req listWeekReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processClearReq binds the slot position query parameters.
func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
