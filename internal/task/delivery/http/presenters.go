package http

import (
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=3,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Deadline    *time.Time `json:"deadline"`
	CategoryID  string     `json:"category_id" binding:"omitempty,uuid"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.TaskPriority(r.Priority),
		Deadline:    r.Deadline,
		CategoryID:  r.CategoryID,
	}
}

type listReq struct {
	Status         string     `form:"status"      binding:"omitempty,oneof=todo in_progress completed cancelled"`
	Priority       string     `form:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	CategoryID     string     `form:"category_id" binding:"omitempty,uuid"`
	Search         string     `form:"search"`
	Overdue        bool       `form:"overdue"`
	MinScore       int        `form:"min_score"   binding:"omitempty,min=0,max=100"`
	DeadlineBefore *time.Time `form:"deadline_before" time_format:"2006-01-02T15:04:05Z07:00"`
	DeadlineAfter  *time.Time `form:"deadline_after"  time_format:"2006-01-02T15:04:05Z07:00"`
	Ordering       string     `form:"ordering"`
	Limit          int        `form:"limit"`
	Offset         int        `form:"offset"`
}

func (r listReq) validate() error { return nil }

// orderingColumns whitelists client sort keys against SQL columns.
var orderingColumns = map[string]string{
	"created_at":      "t.created_at ASC",
	"-created_at":     "t.created_at DESC",
	"deadline":        "t.deadline ASC",
	"-deadline":       "t.deadline DESC",
	"priority_score":  "t.priority_score ASC",
	"-priority_score": "t.priority_score DESC",
	"title":           "t.title ASC",
	"-title":          "t.title DESC",
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Status:         r.Status,
		Priority:       r.Priority,
		CategoryID:     r.CategoryID,
		Search:         r.Search,
		OverdueOnly:    r.Overdue,
		MinScore:       r.MinScore,
		DeadlineBefore: r.DeadlineBefore,
		DeadlineAfter:  r.DeadlineAfter,
		OrderBy:        orderingColumns[r.Ordering],
		Limit:          limit,
		Offset:         offset,
	}
}

type updateReq struct {
	ID            string     `json:"-"` // populated from URI param
	Title         string     `json:"title"       binding:"omitempty,min=3,max=255"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Status        string     `json:"status"      binding:"omitempty,oneof=todo in_progress completed cancelled"`
	Priority      string     `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Deadline      *time.Time `json:"deadline"`
	ClearDeadline bool       `json:"clear_deadline"`
	CategoryID    string     `json:"category_id" binding:"omitempty,uuid"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Status:        model.TaskStatus(r.Status),
		Priority:      model.TaskPriority(r.Priority),
		Deadline:      r.Deadline,
		ClearDeadline: r.ClearDeadline,
		CategoryID:    r.CategoryID,
	}
}

type bulkUpdateFields struct {
	Status     string `json:"status"      binding:"omitempty,oneof=todo in_progress completed cancelled"`
	Priority   string `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	CategoryID string `json:"category_id" binding:"omitempty,uuid"`
}

type bulkUpdateReq struct {
	TaskIDs []string         `json:"task_ids" binding:"required,min=1,dive,uuid"`
	Updates bulkUpdateFields `json:"updates"  binding:"required"`
}

func (r bulkUpdateReq) validate() error { return nil }

func (r bulkUpdateReq) toInput() task.BulkUpdateInput {
	return task.BulkUpdateInput{
		TaskIDs:    r.TaskIDs,
		Status:     model.TaskStatus(r.Updates.Status),
		Priority:   model.TaskPriority(r.Updates.Priority),
		CategoryID: r.Updates.CategoryID,
	}
}

type prioritizeReq struct {
	TaskIDs []string `json:"task_ids" binding:"omitempty,dive,uuid"`
}

func (r prioritizeReq) validate() error { return nil }

func (r prioritizeReq) toInput() task.PrioritizeInput {
	return task.PrioritizeInput{TaskIDs: r.TaskIDs}
}

type addCommentReq struct {
	TaskID  string `json:"-"` // populated from URI param
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

func (r addCommentReq) validate() error { return nil }

func (r addCommentReq) toInput() task.AddCommentInput {
	return task.AddCommentInput{
		TaskID:  r.TaskID,
		Content: r.Content,
	}
}

// --- Response DTOs ---

// taskListItem is the compact shape used on listing endpoints.
type taskListItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	PriorityScore int        `json:"priority_score"`
	Deadline      *time.Time `json:"deadline"`
	CategoryName  string     `json:"category_name"`
	UrgencyLevel  string     `json:"urgency_level"`
	IsOverdue     bool       `json:"is_overdue"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newTaskListItem(t model.Task, now time.Time) taskListItem {
	return taskListItem{
		ID:            t.ID,
		Title:         t.Title,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		PriorityScore: t.PriorityScore,
		Deadline:      t.Deadline,
		CategoryName:  t.CategoryName,
		UrgencyLevel:  t.UrgencyLevel(now),
		IsOverdue:     t.IsOverdue(now),
		CreatedAt:     t.CreatedAt,
	}
}

func newTaskListItems(tasks []model.Task, now time.Time) []taskListItem {
	items := make([]taskListItem, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskListItem(t, now)
	}
	return items
}

// taskResp is the full shape used on detail endpoints.
type taskResp struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	PriorityScore       int        `json:"priority_score"`
	Deadline            *time.Time `json:"deadline"`
	CategoryID          string     `json:"category_id,omitempty"`
	CategoryName        string     `json:"category_name"`
	UrgencyLevel        string     `json:"urgency_level"`
	IsOverdue           bool       `json:"is_overdue"`
	HighPriority        bool       `json:"high_priority"`
	AISuggestedDeadline *time.Time `json:"ai_suggested_deadline,omitempty"`
	AIReasoning         string     `json:"ai_reasoning,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task, now time.Time) taskResp {
	return taskResp{
		ID:                  t.ID,
		Title:               t.Title,
		Description:         t.Description,
		Status:              string(t.Status),
		Priority:            string(t.Priority),
		PriorityScore:       t.PriorityScore,
		Deadline:            t.Deadline,
		CategoryID:          t.CategoryID,
		CategoryName:        t.CategoryName,
		UrgencyLevel:        t.UrgencyLevel(now),
		IsOverdue:           t.IsOverdue(now),
		HighPriority:        t.IsHighPriority(),
		AISuggestedDeadline: t.AISuggestedDeadline,
		AIReasoning:         t.AIReasoning,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
		CompletedAt:         t.CompletedAt,
	}
}

type byStatusResp struct {
	Todo       []taskListItem `json:"todo"`
	InProgress []taskListItem `json:"in_progress"`
	Completed  []taskListItem `json:"completed"`
	Cancelled  []taskListItem `json:"cancelled"`
}

func newByStatusResp(out task.ByStatusOutput, now time.Time) byStatusResp {
	return byStatusResp{
		Todo:       newTaskListItems(out.Groups[model.TaskStatusTodo], now),
		InProgress: newTaskListItems(out.Groups[model.TaskStatusInProgress], now),
		Completed:  newTaskListItems(out.Groups[model.TaskStatusCompleted], now),
		Cancelled:  newTaskListItems(out.Groups[model.TaskStatusCancelled], now),
	}
}

type statsResp struct {
	Total            int            `json:"total"`
	Todo             int            `json:"todo"`
	InProgress       int            `json:"in_progress"`
	Completed        int            `json:"completed"`
	Cancelled        int            `json:"cancelled"`
	Overdue          int            `json:"overdue"`
	DueToday         int            `json:"due_today"`
	DueThisWeek      int            `json:"due_this_week"`
	HighPriority     int            `json:"high_priority"`
	TasksByPriority  map[string]int `json:"tasks_by_priority"`
	AvgPriorityScore float64        `json:"avg_priority_score"`
	CompletionRate   float64        `json:"completion_rate"`
}

func newStatsResp(s task.Stats) statsResp {
	byPriority := make(map[string]int, len(s.ByPriority))
	for p, n := range s.ByPriority {
		byPriority[string(p)] = n
	}
	return statsResp{
		Total:            s.Total,
		Todo:             s.Todo,
		InProgress:       s.InProgress,
		Completed:        s.Completed,
		Cancelled:        s.Cancelled,
		Overdue:          s.Overdue,
		DueToday:         s.DueToday,
		DueThisWeek:      s.DueThisWeek,
		HighPriority:     s.HighPriority,
		TasksByPriority:  byPriority,
		AvgPriorityScore: s.AvgPriorityScore,
		CompletionRate:   s.CompletionRate,
	}
}

type bulkUpdateResp struct {
	Updated int `json:"updated"`
}

type priorityAnalysisResp struct {
	SuggestedPriorityScore int      `json:"suggested_priority_score"`
	Factors                []string `json:"factors"`
	Confidence             int      `json:"confidence"`
}

type deadlineSuggestionResp struct {
	SuggestedDeadline *time.Time `json:"suggested_deadline"`
	Reasoning         string     `json:"reasoning"`
	Confidence        int        `json:"confidence"`
}

type analysisResp struct {
	TaskID                 string                 `json:"task_id"`
	PriorityAnalysis       priorityAnalysisResp   `json:"priority_analysis"`
	DeadlineSuggestion     deadlineSuggestionResp `json:"deadline_suggestion"`
	SuggestedCategory      string                 `json:"suggested_category,omitempty"`
	EnhancementSuggestions []string               `json:"enhancement_suggestions"`
	Provider               string                 `json:"provider,omitempty"`
}

func newAnalysisResp(out task.AnalysisOutput) analysisResp {
	a := out.Analysis
	return analysisResp{
		TaskID: out.Task.ID,
		PriorityAnalysis: priorityAnalysisResp{
			SuggestedPriorityScore: a.Priority.SuggestedScore,
			Factors:                a.Priority.Factors,
			Confidence:             a.Priority.Confidence,
		},
		DeadlineSuggestion: deadlineSuggestionResp{
			SuggestedDeadline: a.Deadline.SuggestedDeadline,
			Reasoning:         a.Deadline.Reasoning,
			Confidence:        a.Deadline.Confidence,
		},
		SuggestedCategory:      a.SuggestedCategory,
		EnhancementSuggestions: a.EnhancementSuggestions,
		Provider:               a.ProviderName,
	}
}

type prioritizedTaskResp struct {
	TaskID                 string `json:"task_id"`
	CurrentPriorityScore   int    `json:"current_priority_score"`
	SuggestedPriorityScore int    `json:"suggested_priority_score"`
	Ranking                int    `json:"ranking"`
	Reasoning              string `json:"reasoning"`
}

type analysisSummaryResp struct {
	TotalTasksAnalyzed int      `json:"total_tasks_analyzed"`
	HighPriorityCount  int      `json:"high_priority_count"`
	Recommendations    []string `json:"recommendations"`
}

type prioritizationResp struct {
	PrioritizedTasks []prioritizedTaskResp `json:"prioritized_tasks"`
	AnalysisSummary  analysisSummaryResp   `json:"analysis_summary"`
	Provider         string                `json:"provider,omitempty"`
}

func newPrioritizationResp(out task.PrioritizationOutput) prioritizationResp {
	result := out.Result
	tasks := make([]prioritizedTaskResp, len(result.Tasks))
	for i, r := range result.Tasks {
		tasks[i] = prioritizedTaskResp{
			TaskID:                 r.TaskID,
			CurrentPriorityScore:   r.CurrentScore,
			SuggestedPriorityScore: r.SuggestedScore,
			Ranking:                r.Ranking,
			Reasoning:              r.Reasoning,
		}
	}
	return prioritizationResp{
		PrioritizedTasks: tasks,
		AnalysisSummary: analysisSummaryResp{
			TotalTasksAnalyzed: result.Summary.TotalTasksAnalyzed,
			HighPriorityCount:  result.Summary.HighPriorityCount,
			Recommendations:    result.Summary.Recommendations,
		},
		Provider: result.ProviderName,
	}
}

type commentResp struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newCommentResp(c model.TaskComment) commentResp {
	return commentResp{
		ID:        c.ID,
		TaskID:    c.TaskID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func newCommentResps(comments []model.TaskComment) []commentResp {
	out := make([]commentResp, len(comments))
	for i, c := range comments {
		out[i] = newCommentResp(c)
	}
	return out
}
