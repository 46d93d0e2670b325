package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "smart-todo-backend/pkg/errors"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}

// processBulkUpdateReq binds and validates the bulk update request body.
func (h *handler) processBulkUpdateReq(c *gin.Context) (bulkUpdateReq, error) {
	var req bulkUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPrioritizeReq binds the optional prioritization body. An empty
// body means "rank everything open".
func (h *handler) processPrioritizeReq(c *gin.Context) (prioritizeReq, error) {
	var req prioritizeReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAddCommentReq binds and validates the comment request body + URI param.
func (h *handler) processAddCommentReq(c *gin.Context) (addCommentReq, error) {
	var req addCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}
