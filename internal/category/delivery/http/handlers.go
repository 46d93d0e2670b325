package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/pkg/response"
)

// Create godoc
// @Summary     Create a category
// @Description Creates a category with a unique name for the authenticated user.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Category data"
// @Success     201 {object} categoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCategoryResp(output.Category))
}

// List godoc
// @Summary     List categories
// @Description Returns a paginated list of the user's categories ordered by usage.
// @Tags        Categories
// @Produce     json
// @Param       search query string false "Filter by name substring"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} response.List
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	results := make([]categoryResp, len(output.Categories))
	for i, cat := range output.Categories {
		results[i] = newCategoryResp(cat)
	}
	response.Paginated(c, output.Total, output.Limit, output.Offset, results)
}

// Detail godoc
// @Summary     Get category detail
// @Description Returns a single category by its ID.
// @Tags        Categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} categoryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(output.Category))
}

// Update godoc
// @Summary     Update a category
// @Description Updates a category. All fields are optional (partial update).
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Category ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} categoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(output.Category))
}

// Delete godoc
// @Summary     Delete a category
// @Description Removes a category that has no tasks assigned.
// @Tags        Categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - category still in use"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
