package repository

import (
	"time"

	"smart-todo-backend/internal/model"
)

// CreateAIRequestOptions holds parameters for recording one analyzer invocation.
type CreateAIRequestOptions struct {
	ID           string
	UserID       string
	RequestType  model.AIRequestType
	Status       model.AIRequestStatus
	ProviderName string
	ModelName    string
	PromptTokens int
	OutputTokens int
	DurationMS   int64
	ErrorDetail  string
}

// ListAIRequestsOptions holds filter and pagination parameters for the audit log.
type ListAIRequestsOptions struct {
	UserID      string
	RequestType string
	Status      string
	Limit       int
	Offset      int
}

// UpsertPreferencesOptions holds the full preference set to store for a user.
type UpsertPreferencesOptions struct {
	UserID                 string
	AutoAnalyzeContext     bool
	AutoSuggestDeadline    bool
	PreferredProvider      string
	Timezone               string
	WorkdayStartHour       int
	WorkdayEndHour         int
	MinConfidenceThreshold int
}

// SaveTaskAnalysisOptions holds the analysis result to store for a task.
// An existing row for the task is replaced.
type SaveTaskAnalysisOptions struct {
	ID                    string
	TaskID                string
	UserID                string
	SuggestedScore        int
	ScoreFactors          []string
	ScoreConfidence       int
	SuggestedDeadline     *time.Time
	DeadlineReasoning     string
	DeadlineConfidence    int
	SuggestedCategory     string
	EnhancementSuggestion []string
	ProviderName          string
}

// GetOneTaskAnalysisOptions holds filter parameters for fetching a stored analysis.
type GetOneTaskAnalysisOptions struct {
	TaskID string
	UserID string
}
