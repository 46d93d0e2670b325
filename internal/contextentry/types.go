package contextentry

import "smart-todo-backend/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Content    string
	SourceType model.ContextSource
}

type ListInput struct {
	SourceType string
	Status     string
	Search     string
	Limit      int
	Offset     int
}

type UpdateInput struct {
	ID         string
	Content    string
	SourceType model.ContextSource
}

type ImportCalendarInput struct {
	CalendarID string
	Days       int
	MaxEvents  int
}

type InsightListInput struct {
	InsightType    string
	ActionableOnly bool
	HighConfidence bool
	Limit          int
	Offset         int
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Entry    model.ContextEntry
	Insights []model.ContextInsight
}

type ListOutput struct {
	Entries []model.ContextEntry
	Total   int
	Limit   int
	Offset  int
}

type BulkAnalyzeOutput struct {
	Processed int
	Failed    int
}

// Summary aggregates the user's captured context.
type Summary struct {
	Total              int
	Pending            int
	Completed          int
	Failed             int
	HighRelevance      int
	WithExtractedTasks int
	AvgRelevanceScore  float64
	RecentActivity     int
	BySource           map[model.ContextSource]int
	ActionableInsights int
}

type SummaryOutput struct {
	Summary Summary
}

type ImportOutput struct {
	Imported int
	Entries  []model.ContextEntry
}

type InsightListOutput struct {
	Insights []model.ContextInsight
	Total    int
	Limit    int
	Offset   int
}
