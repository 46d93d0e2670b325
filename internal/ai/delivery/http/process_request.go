package http

import (
	"github.com/gin-gonic/gin"
)

// processRequestListReq binds and validates the audit log query parameters.
func (h *handler) processRequestListReq(c *gin.Context) (requestListReq, error) {
	var req requestListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdatePreferencesReq binds and validates the preferences request body.
func (h *handler) processUpdatePreferencesReq(c *gin.Context) (updatePreferencesReq, error) {
	var req updatePreferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
