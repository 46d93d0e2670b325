package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/contextentry"
	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/pkg/response"
)

// Create godoc
// @Summary     Capture a context entry
// @Description Stores a piece of external context (message, email, note) in the pending processing state.
// @Tags        Context
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Entry data"
// @Success     201 {object} entryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries [POST]
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

	response.Created(c, newEntryResp(output.Entry))
}

// List godoc
// @Summary     List context entries
// @Description Returns a paginated list with filters for source type, processing status and content search.
// @Tags        Context
// @Produce     json
// @Param       source_type query string false "Filter by source type"
// @Param       status      query string false "Filter by processing status"
// @Param       search      query string false "Search in content"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} response.List
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries [GET]
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

	response.Paginated(c, output.Total, output.Limit, output.Offset, newEntryResps(output.Entries))
}

// Detail godoc
// @Summary     Get a context entry
// @Description Returns one entry with its stored insights.
// @Tags        Context
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/{id} [GET]
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

	response.OK(c, newDetailResp(output))
}

// Update godoc
// @Summary     Update a context entry
// @Description Edits the content or source of an entry and resets it to pending for reprocessing.
// @Tags        Context
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Entry ID"
// @Param       body body updateReq true "Entry data"
// @Success     200 {object} entryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/{id} [PUT]
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

	response.OK(c, newEntryResp(output.Entry))
}

// Delete godoc
// @Summary     Delete a context entry
// @Description Removes an entry and its insights.
// @Tags        Context
// @Param       id path string true "Entry ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/{id} [DELETE]
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

// Analyze godoc
// @Summary     Analyze a context entry
// @Description Runs AI analysis over the entry, extracting tasks, keywords, sentiment and insights.
// @Tags        Context
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/{id}/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Analyze(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDetailResp(output))
}

// BulkAnalyze godoc
// @Summary     Analyze multiple context entries
// @Description Runs AI analysis over a set of entries. Entries that fail are counted, not fatal.
// @Tags        Context
// @Accept      json
// @Produce     json
// @Param       body body bulkAnalyzeReq true "Entry IDs"
// @Success     200 {object} bulkAnalyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/bulk_analyze [POST]
func (h *handler) BulkAnalyze(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processBulkAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BulkAnalyze(ctx, sc, req.EntryIDs)
	if err != nil {
		h.l.Errorf(ctx, "uc.BulkAnalyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, bulkAnalyzeResp{Processed: output.Processed, Failed: output.Failed})
}

// Summary godoc
// @Summary     Context summary
// @Description Aggregates the user's captured context by status, source and relevance.
// @Tags        Context
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(output.Summary))
}

// PendingProcessing godoc
// @Summary     List entries awaiting processing
// @Tags        Context
// @Produce     json
// @Success     200 {object} response.List
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/pending_processing [GET]
func (h *handler) PendingProcessing(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.PendingProcessing(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.PendingProcessing: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, output.Limit, output.Offset, newEntryResps(output.Entries))
}

// HighRelevance godoc
// @Summary     List high relevance entries
// @Tags        Context
// @Produce     json
// @Success     200 {object} response.List
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/high_relevance [GET]
func (h *handler) HighRelevance(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.HighRelevance(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.HighRelevance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, output.Limit, output.Offset, newEntryResps(output.Entries))
}

// WithExtractedTasks godoc
// @Summary     List entries with extracted tasks
// @Tags        Context
// @Produce     json
// @Success     200 {object} response.List
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/with_extracted_tasks [GET]
func (h *handler) WithExtractedTasks(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.WithExtractedTasks(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.WithExtractedTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, output.Limit, output.Offset, newEntryResps(output.Entries))
}

// ImportCalendar godoc
// @Summary     Import calendar events as context
// @Description Captures upcoming Google Calendar events as pending context entries.
// @Tags        Context
// @Accept      json
// @Produce     json
// @Param       body body importCalendarReq false "Import options"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar import not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/entries/import_calendar [POST]
func (h *handler) ImportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processImportCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportCalendar(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newImportResp(output))
}

// ListInsights godoc
// @Summary     List context insights
// @Description Returns a paginated list of insights with filters for type, actionability and confidence.
// @Tags        Context
// @Produce     json
// @Param       insight_type    query string false "Filter by insight type"
// @Param       actionable      query bool   false "Only actionable insights"
// @Param       high_confidence query bool   false "Only high confidence insights"
// @Param       limit           query int    false "Page size (default: 20)"
// @Param       offset          query int    false "Page offset (default: 0)"
// @Success     200 {object} response.List
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/insights [GET]
func (h *handler) ListInsights(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processInsightListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListInsights(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListInsights: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, output.Limit, output.Offset, newInsightResps(output.Insights))
}

// InsightDetail godoc
// @Summary     Get one insight
// @Description Returns a single insight by ID.
// @Tags        Context
// @Produce     json
// @Param       id path string true "Insight ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/insights/{id} [GET]
func (h *handler) InsightDetail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	in, err := h.uc.InsightDetail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.InsightDetail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newInsightResp(in))
}

// ActionableInsights godoc
// @Summary     List actionable insights
// @Description Returns the user's actionable insights.
// @Tags        Context
// @Produce     json
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} response.List
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/insights/actionable [GET]
func (h *handler) ActionableInsights(c *gin.Context) {
	h.listInsightsFiltered(c, func(input *contextentry.InsightListInput) {
		input.ActionableOnly = true
	})
}

// HighConfidenceInsights godoc
// @Summary     List high confidence insights
// @Description Returns the user's insights at or above the high confidence threshold.
// @Tags        Context
// @Produce     json
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} response.List
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /context/api/v1/insights/high_confidence [GET]
func (h *handler) HighConfidenceInsights(c *gin.Context) {
	h.listInsightsFiltered(c, func(input *contextentry.InsightListInput) {
		input.HighConfidence = true
	})
}

// listInsightsFiltered lists insights with a forced filter applied on top of
// the query parameters.
func (h *handler) listInsightsFiltered(c *gin.Context, force func(*contextentry.InsightListInput)) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processInsightListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := req.toInput()
	force(&input)

	output, err := h.uc.ListInsights(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListInsights: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, output.Limit, output.Offset, newInsightResps(output.Insights))
}
