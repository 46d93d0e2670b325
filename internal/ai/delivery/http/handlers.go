package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/pkg/response"
)

// Providers godoc
// @Summary     List configured LLM providers
// @Description Returns the providers in priority order and whether any is available. Analysis falls back to heuristics when none is.
// @Tags        AI
// @Produce     json
// @Success     200 {object} providersResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/providers [GET]
func (h *handler) Providers(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Providers(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Providers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProvidersResp(output))
}

// ListRequests godoc
// @Summary     List AI request audit log
// @Description Returns a paginated log of analyzer invocations, newest first.
// @Tags        AI
// @Produce     json
// @Param       request_type query string false "Filter by request type"
// @Param       status       query string false "Filter by status"
// @Param       limit        query int    false "Page size (default: 20)"
// @Param       offset       query int    false "Page offset (default: 0)"
// @Success     200 {object} response.List
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/requests [GET]
func (h *handler) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRequestListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListRequests(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRequests: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, output.Limit, output.Offset, newRequestResps(output.Requests))
}

// GetPreferences godoc
// @Summary     Get AI preferences
// @Description Returns the user's analyzer preferences, or the defaults when never saved.
// @Tags        AI
// @Produce     json
// @Success     200 {object} preferencesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/preferences [GET]
func (h *handler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetPreferences(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPreferences: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPreferencesResp(output.Preferences))
}

// UpdatePreferences godoc
// @Summary     Update AI preferences
// @Description Partially updates the user's analyzer preferences. Omitted fields keep their stored value.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body updatePreferencesReq true "Preference fields"
// @Success     200 {object} preferencesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/preferences [PUT]
func (h *handler) UpdatePreferences(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdatePreferencesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdatePreferences(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdatePreferences: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPreferencesResp(output.Preferences))
}
