package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task in the todo status. Deadlines must be in the future.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Category not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
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

	response.Created(c, newTaskResp(output.Task, time.Now()))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list with filters for status, priority, category, search, deadline windows and minimum score.
// @Tags        Tasks
// @Produce     json
// @Param       status      query string false "Filter by status"
// @Param       priority    query string false "Filter by priority"
// @Param       category_id query string false "Filter by category"
// @Param       search      query string false "Search in title and description"
// @Param       overdue     query bool   false "Only overdue tasks"
// @Param       min_score   query int    false "Minimum priority score"
// @Param       ordering    query string false "Sort key, prefix with - for descending"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} response.List
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
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

	response.Paginated(c, output.Total, output.Limit, output.Offset, newTaskListItems(output.Tasks, time.Now()))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with derived urgency fields.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
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

	response.OK(c, newTaskResp(output.Task, time.Now()))
}

// Update godoc
// @Summary     Update a task
// @Description Updates a task. All fields are optional (partial update).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
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

	response.OK(c, newTaskResp(output.Task, time.Now()))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task and its comments.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
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

// MarkCompleted godoc
// @Summary     Mark a task completed
// @Description Transitions a task to completed and stamps the completion time.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/mark_completed [POST]
func (h *handler) MarkCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.MarkCompleted(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkCompleted: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task, time.Now()))
}

// Overdue godoc
// @Summary     List overdue tasks
// @Description Returns open tasks whose deadline has passed, earliest first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.List
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/overdue [GET]
func (h *handler) Overdue(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Overdue(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overdue: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, 0, 0, newTaskListItems(output.Tasks, time.Now()))
}

// HighPriority godoc
// @Summary     List high priority tasks
// @Description Returns open tasks with a priority score of 70 or above.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.List
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/high_priority [GET]
func (h *handler) HighPriority(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.HighPriority(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.HighPriority: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, output.Total, 0, 0, newTaskListItems(output.Tasks, time.Now()))
}

// ByStatus godoc
// @Summary     Group tasks by status
// @Description Returns all tasks grouped into the four status buckets.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} byStatusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/by_status [GET]
func (h *handler) ByStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.ByStatus(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ByStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newByStatusResp(output, time.Now()))
}

// DashboardStats godoc
// @Summary     Dashboard statistics
// @Description Returns aggregate counters over the user's tasks.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/dashboard_stats [GET]
func (h *handler) DashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.DashboardStats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.DashboardStats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatsResp(output.Stats))
}

// BulkUpdate godoc
// @Summary     Bulk update tasks
// @Description Applies the same status, priority or category change to a set of tasks.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body bulkUpdateReq true "Task IDs and fields to apply"
// @Success     200 {object} bulkUpdateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/bulk_update [POST]
func (h *handler) BulkUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processBulkUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BulkUpdate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BulkUpdate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, bulkUpdateResp{Updated: output.Updated})
}

// Analyze godoc
// @Summary     AI analysis of a task
// @Description Scores the task, suggests a deadline and lists improvements. Falls back to heuristics when no provider is configured.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} analysisResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/ai_analysis [POST]
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

	response.OK(c, newAnalysisResp(output))
}

// Prioritize godoc
// @Summary     AI prioritization of open tasks
// @Description Ranks the named tasks, or all open tasks when the body is empty, and returns suggested scores with a summary.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body prioritizeReq false "Optional subset of task IDs to rank"
// @Success     200 {object} prioritizationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/ai_prioritization [POST]
func (h *handler) Prioritize(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processPrioritizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Prioritize(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Prioritize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPrioritizationResp(output))
}

// ListComments godoc
// @Summary     List task comments
// @Description Returns the comments of a task, oldest first.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {array} commentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/comments [GET]
func (h *handler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	comments, err := h.uc.ListComments(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListComments: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommentResps(comments))
}

// AddComment godoc
// @Summary     Add a task comment
// @Description Attaches a comment to a task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body addCommentReq true "Comment content"
// @Success     201 {object} commentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/comments [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processAddCommentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.uc.AddComment(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCommentResp(comment))
}
