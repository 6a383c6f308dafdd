package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
	"github.com/priyanka7rc/laya/pkg/response"
)

// List godoc
// @Summary     Get a week's grocery list
// @Description Returns the aggregated grocery list of the week containing the given date.
// @Tags        Grocery
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       week      query  string true "Any date inside the target week (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/grocery [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Regenerate godoc
// @Summary     Rebuild a week's grocery list
// @Description Recomputes the week's list from its planned recipes, replacing manual edits.
// @Tags        Grocery
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       week      query  string true "Any date inside the target week (YYYY-MM-DD)"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/grocery/regenerate [POST]
func (h *handler) Regenerate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Regenerate(ctx, sc, req.Week); err != nil {
		h.l.Errorf(ctx, "uc.Regenerate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// SetChecked godoc
// @Summary     Check or uncheck an item
// @Description Updates one grocery item's checked flag.
// @Tags        Grocery
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "User ID"
// @Param       id        path   string        true "Item ID"
// @Param       body      body   setCheckedReq true "Checked state"
// @Success     200 {object} setCheckedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/grocery/items/{id} [PATCH]
func (h *handler) SetChecked(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSetCheckedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetChecked(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetChecked: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSetCheckedResp(output))
}

// DeleteItem godoc
// @Summary     Delete an item
// @Description Removes one grocery item by hand. The next regeneration may bring it back.
// @Tags        Grocery
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       id        path   string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/grocery/items/{id} [DELETE]
func (h *handler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteItem(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteItem: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
