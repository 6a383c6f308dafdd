package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/middleware"
	"github.com/priyanka7rc/laya/pkg/response"
)

// Create godoc
// @Summary     Create a recipe
// @Description Creates a recipe with its ingredient list.
// @Tags        Recipe
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "User ID"
// @Param       body      body   createReq true "Recipe data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recipes [POST]
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

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newCreateResp(output))
}

// List godoc
// @Summary     List recipes
// @Description Returns the user's recipes without ingredient detail.
// @Tags        Recipe
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "User ID"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recipes [GET]
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

// Detail godoc
// @Summary     Get recipe detail
// @Description Returns one recipe with its full ingredient list.
// @Tags        Recipe
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       id        path   string true "Recipe ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recipes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailResp(output))
}

// Update godoc
// @Summary     Update a recipe
// @Description Updates recipe header fields; a non-null ingredients array replaces the whole set.
// @Tags        Recipe
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "User ID"
// @Param       id        path   string    true "Recipe ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recipes/{id} [PUT]
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
// @Summary     Delete a recipe
// @Description Permanently removes a recipe and its ingredients.
// @Tags        Recipe
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       id        path   string true "Recipe ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recipes/{id} [DELETE]
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
