package model

import "time"

type AIRequestType string

const (
	AIRequestTypeTaskAnalysis    AIRequestType = "task_analysis"
	AIRequestTypePrioritization  AIRequestType = "prioritization"
	AIRequestTypeContextAnalysis AIRequestType = "context_analysis"
	AIRequestTypeDeadline        AIRequestType = "deadline_suggestion"
	AIRequestTypeCategorization  AIRequestType = "categorization"
)

type AIRequestStatus string

const (
	AIRequestStatusPending   AIRequestStatus = "pending"
	AIRequestStatusCompleted AIRequestStatus = "completed"
	AIRequestStatusFailed    AIRequestStatus = "failed"
)

// AIRequest is an audit record of one analyzer invocation, whether it hit a
// live provider or fell back to heuristics.
type AIRequest struct {
	ID           string
	UserID       string
	RequestType  AIRequestType
	Status       AIRequestStatus
	ProviderName string // empty when the heuristic fallback answered
	ModelName    string
	PromptTokens int
	OutputTokens int
	DurationMS   int64
	ErrorDetail  string
	CreatedAt    time.Time
}

// UserAIPreferences tunes analyzer behavior per user.
type UserAIPreferences struct {
	UserID                 string
	AutoAnalyzeContext     bool
	AutoSuggestDeadline    bool
	PreferredProvider      string
	Timezone               string
	WorkdayStartHour       int
	WorkdayEndHour         int
	MinConfidenceThreshold int
	UpdatedAt              time.Time
}

// DefaultAIPreferences returns the preferences applied before a user saves any.
func DefaultAIPreferences(userID string) UserAIPreferences {
	return UserAIPreferences{
		UserID:                 userID,
		AutoAnalyzeContext:     true,
		AutoSuggestDeadline:    true,
		Timezone:               "UTC",
		WorkdayStartHour:       9,
		WorkdayEndHour:         17,
		MinConfidenceThreshold: 70,
	}
}

// TaskAIAnalysis is the stored result of the most recent analysis of a task.
type TaskAIAnalysis struct {
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
	CreatedAt             time.Time
}
