package repository

import (
	"context"

	"smart-todo-backend/internal/model"
)

// Repository is the composed interface for the context domain data store.
type Repository interface {
	EntryRepository
	InsightRepository
	ProcessingLogRepository
}

// EntryRepository defines all data access methods for context entries.
type EntryRepository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (model.ContextEntry, error)
	GetOneEntry(ctx context.Context, opt GetOneEntryOptions) (model.ContextEntry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.ContextEntry, int, error)
	UpdateEntryContent(ctx context.Context, opt UpdateEntryContentOptions) (model.ContextEntry, error)
	DeleteEntry(ctx context.Context, userID, id string) error
	SetEntryStatus(ctx context.Context, id string, status model.ProcessingStatus) error
	SaveEntryAnalysis(ctx context.Context, opt SaveEntryAnalysisOptions) (model.ContextEntry, error)
	SummaryCounts(ctx context.Context, userID string) (SummaryRow, error)
}

// InsightRepository defines data access methods for context insights.
type InsightRepository interface {
	ReplaceInsights(ctx context.Context, entryID string, opts []CreateInsightOptions) ([]model.ContextInsight, error)
	GetOneInsight(ctx context.Context, opt GetOneInsightOptions) (model.ContextInsight, error)
	ListInsights(ctx context.Context, opt ListInsightsOptions) ([]model.ContextInsight, int, error)
	ListEntryInsights(ctx context.Context, entryID string) ([]model.ContextInsight, error)
	CountActionableInsights(ctx context.Context, userID string) (int, error)
}

// ProcessingLogRepository records processing attempts.
type ProcessingLogRepository interface {
	CreateProcessingLog(ctx context.Context, opt CreateProcessingLogOptions) error
}
