package analyzer

import (
	"time"

	"smart-todo-backend/internal/model"
)

// PriorityAnalysis scores a single task.
type PriorityAnalysis struct {
	SuggestedScore int
	Factors        []string
	Confidence     int
}

// DeadlineSuggestion proposes a deadline for a task without one.
type DeadlineSuggestion struct {
	SuggestedDeadline *time.Time
	Reasoning         string
	Confidence        int
}

// TaskAnalysis is the full analysis result for one task.
type TaskAnalysis struct {
	TaskID                 string
	Priority               PriorityAnalysis
	Deadline               DeadlineSuggestion
	SuggestedCategory      string
	EnhancementSuggestions []string
	ProviderName           string // empty when the heuristic answered
}

// TaskRanking is one entry of a prioritization result.
type TaskRanking struct {
	TaskID         string
	CurrentScore   int
	SuggestedScore int
	Ranking        int
	Reasoning      string
}

// PrioritizationSummary aggregates a prioritization run.
type PrioritizationSummary struct {
	TotalTasksAnalyzed int
	HighPriorityCount  int
	Recommendations    []string
}

// Prioritization ranks a set of open tasks.
type Prioritization struct {
	Tasks        []TaskRanking
	Summary      PrioritizationSummary
	ProviderName string
}

// InsightDraft is an insight produced while analyzing a context entry,
// before it is persisted.
type InsightDraft struct {
	Type       model.InsightType
	Content    string
	Confidence int
	Actionable bool
}

// ContextAnalysis is the full analysis result for one context entry.
type ContextAnalysis struct {
	RelevanceScore   int
	SentimentScore   float64
	UrgencyIndicator int
	Keywords         []string
	ExtractedTasks   []model.ExtractedTask
	Insights         []InsightDraft
	ProviderName     string
}
