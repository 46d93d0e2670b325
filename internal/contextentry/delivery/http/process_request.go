package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "smart-todo-backend/pkg/errors"
)

// processCreateReq binds and validates the create entry request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list entries query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update entry request body + URI param.
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

// processBulkAnalyzeReq binds and validates the bulk analyze request body.
func (h *handler) processBulkAnalyzeReq(c *gin.Context) (bulkAnalyzeReq, error) {
	var req bulkAnalyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processImportCalendarReq binds and validates the calendar import request body.
// An empty body means defaults.
func (h *handler) processImportCalendarReq(c *gin.Context) (importCalendarReq, error) {
	var req importCalendarReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}

// processInsightListReq binds and validates the list insights query parameters.
func (h *handler) processInsightListReq(c *gin.Context) (insightListReq, error) {
	var req insightListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
