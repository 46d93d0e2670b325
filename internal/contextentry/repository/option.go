package repository

import (
	"smart-todo-backend/internal/model"
)

// CreateEntryOptions holds parameters for inserting a new context entry.
type CreateEntryOptions struct {
	ID         string
	UserID     string
	Content    string
	SourceType model.ContextSource
}

// GetOneEntryOptions holds filter parameters for fetching a single entry.
// All non-empty fields are applied as AND conditions.
type GetOneEntryOptions struct {
	ID     string
	UserID string
}

// ListEntriesOptions holds filter and pagination parameters for listing entries.
// UserID may be empty for cross-user worker scans.
type ListEntriesOptions struct {
	UserID             string
	SourceType         string
	Status             string
	Search             string
	MinRelevance       int
	WithExtractedTasks bool
	Limit              int
	Offset             int
	OrderBy            string
}

// UpdateEntryContentOptions holds the editable fields of an entry.
// Editing resets the processing status to pending.
type UpdateEntryContentOptions struct {
	ID         string
	UserID     string
	Content    string
	SourceType model.ContextSource
}

// SaveEntryAnalysisOptions stores analyzer output on an entry and marks it completed.
type SaveEntryAnalysisOptions struct {
	ID               string
	RelevanceScore   int
	SentimentScore   float64
	UrgencyIndicator int
	ExtractedTasks   []model.ExtractedTask
	Keywords         []string
}

// SummaryRow is the raw context aggregate for one user.
type SummaryRow struct {
	Total              int
	Pending            int
	Completed          int
	Failed             int
	HighRelevance      int
	WithExtractedTasks int
	AvgRelevance       float64
	RecentActivity     int
	BySource           map[model.ContextSource]int
}

// CreateInsightOptions holds parameters for inserting one insight.
type CreateInsightOptions struct {
	ID              string
	UserID          string
	InsightType     model.InsightType
	Content         string
	ConfidenceScore int
	IsActionable    bool
}

// GetOneInsightOptions holds filter parameters for fetching a single insight.
type GetOneInsightOptions struct {
	ID     string
	UserID string
}

// ListInsightsOptions holds filter and pagination parameters for listing insights.
type ListInsightsOptions struct {
	UserID        string
	InsightType   string
	Actionable    *bool
	MinConfidence int
	Limit         int
	Offset        int
}

// CreateProcessingLogOptions records one processing attempt.
type CreateProcessingLogOptions struct {
	ID             string
	ContextEntryID string
	Status         model.ProcessingStatus
	Detail         string
	DurationMS     int64
}
