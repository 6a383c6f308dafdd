package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
	"github.com/priyanka7rc/laya/pkg/response"
)

// Parse godoc
// @Summary     Parse a brain dump
// @Description Converts free-form capture text into task drafts without persisting anything.
// @Tags        BrainDump
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "User ID"
// @Param       body      body   parseReq true "Capture text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/braindump/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newParseResp(output))
}

// Create godoc
// @Summary     Capture a brain dump
// @Description Parses free-form capture text and persists the extracted tasks for the user.
// @Tags        BrainDump
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "User ID"
// @Param       body      body   parseReq true "Capture text"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/braindump [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromDump(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromDump: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newCreateResp(output))
}
