package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
	"github.com/priyanka7rc/laya/pkg/response"
)

// Upsert godoc
// @Summary     Set a meal-plan slot
// @Description Creates or overwrites the slot at (day, meal) and refreshes the week's grocery list.
// @Tags        MealPlan
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "User ID"
// @Param       body      body   upsertReq true "Slot data"
// @Success     200 {object} upsertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meal-plan/slots [PUT]
func (h *handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpsertReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Upsert(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upsert: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newUpsertResp(output))
}

// ListWeek godoc
// @Summary     Get a week's meal plan
// @Description Returns the slots of the week containing the given date.
// @Tags        MealPlan
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       week      query  string true "Any date inside the target week (YYYY-MM-DD)"
// @Success     200 {object} listWeekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meal-plan [GET]
func (h *handler) ListWeek(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListWeek(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWeek: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListWeekResp(output))
}

// Clear godoc
// @Summary     Clear a meal-plan slot
// @Description Removes the slot at (day, meal) and refreshes the week's grocery list.
// @Tags        MealPlan
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       day       query  string true "Slot day (YYYY-MM-DD)"
// @Param       meal      query  string true "Slot meal (breakfast/lunch/dinner/snack)"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meal-plan/slots [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Clear(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newClearResp(output))
}
