package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
	"github.com/priyanka7rc/laya/pkg/response"
)

// Create godoc
// @Summary     Create tasks
// @Description Inserts one or more tasks for the user in a single batch.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "User ID"
// @Param       body      body   createReq true "Task drafts"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateBulk(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBulk: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks with optional category, due-date, and done filters.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "User ID"
// @Param       category  query  string false "Filter by category"
// @Param       due_date  query  string false "Filter by due date (YYYY-MM-DD)"
// @Param       done      query  bool   false "Filter by completion state"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update to one task. All fields are optional.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "User ID"
// @Param       id        path   string    true "Task ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes one task.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
