package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smart-todo-backend/internal/contextentry"
	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/model"
)

// analyzeEntry runs the analyzer over one entry and persists the result.
// On failure the entry is marked failed and a log row records the error.
func (uc *implUseCase) analyzeEntry(ctx context.Context, sc model.Scope, entry model.ContextEntry) (contextentry.DetailOutput, error) {
	started := uc.now()

	if err := uc.repo.SetEntryStatus(ctx, entry.ID, model.ProcessingStatusProcessing); err != nil {
		uc.l.Errorf(ctx, "uc.analyzeEntry SetEntryStatus: %v", err)
		return contextentry.DetailOutput{}, err
	}

	analysis, err := uc.analyzer.AnalyzeContext(ctx, sc, entry)
	if err != nil {
		uc.l.Errorf(ctx, "uc.analyzeEntry AnalyzeContext: %v", err)
		uc.markFailed(ctx, entry.ID, started, err)
		return contextentry.DetailOutput{}, err
	}

	updated, err := uc.repo.SaveEntryAnalysis(ctx, repo.SaveEntryAnalysisOptions{
		ID:               entry.ID,
		RelevanceScore:   analysis.RelevanceScore,
		SentimentScore:   analysis.SentimentScore,
		UrgencyIndicator: analysis.UrgencyIndicator,
		ExtractedTasks:   analysis.ExtractedTasks,
		Keywords:         analysis.Keywords,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.analyzeEntry SaveEntryAnalysis: %v", err)
		uc.markFailed(ctx, entry.ID, started, err)
		return contextentry.DetailOutput{}, err
	}

	drafts := make([]repo.CreateInsightOptions, 0, len(analysis.Insights))
	for _, d := range analysis.Insights {
		drafts = append(drafts, repo.CreateInsightOptions{
			ID:              uuid.NewString(),
			UserID:          entry.UserID,
			InsightType:     d.Type,
			Content:         d.Content,
			ConfidenceScore: d.Confidence,
			IsActionable:    d.Actionable,
		})
	}
	insights, err := uc.repo.ReplaceInsights(ctx, entry.ID, drafts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.analyzeEntry ReplaceInsights: %v", err)
		return contextentry.DetailOutput{}, err
	}

	uc.logProcessing(ctx, entry.ID, model.ProcessingStatusCompleted, analysis.ProviderName, started)
	return contextentry.DetailOutput{Entry: updated, Insights: insights}, nil
}

func (uc *implUseCase) markFailed(ctx context.Context, entryID string, started time.Time, cause error) {
	if err := uc.repo.SetEntryStatus(ctx, entryID, model.ProcessingStatusFailed); err != nil {
		uc.l.Warnf(ctx, "uc.markFailed SetEntryStatus: %v", err)
	}
	uc.logProcessingDetail(ctx, entryID, model.ProcessingStatusFailed, cause.Error(), started)
}

func (uc *implUseCase) logProcessing(ctx context.Context, entryID string, status model.ProcessingStatus, provider string, started time.Time) {
	detail := "heuristic"
	if provider != "" {
		detail = "provider=" + provider
	}
	uc.logProcessingDetail(ctx, entryID, status, detail, started)
}

func (uc *implUseCase) logProcessingDetail(ctx context.Context, entryID string, status model.ProcessingStatus, detail string, started time.Time) {
	err := uc.repo.CreateProcessingLog(ctx, repo.CreateProcessingLogOptions{
		ID:             uuid.NewString(),
		ContextEntryID: entryID,
		Status:         status,
		Detail:         detail,
		DurationMS:     uc.now().Sub(started).Milliseconds(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.logProcessing CreateProcessingLog: %v", err)
	}
}

func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, id string) (contextentry.DetailOutput, error) {
	entry, err := uc.getOwnedEntry(ctx, sc, id)
	if err != nil {
		return contextentry.DetailOutput{}, err
	}
	return uc.analyzeEntry(ctx, sc, entry)
}

func (uc *implUseCase) BulkAnalyze(ctx context.Context, sc model.Scope, ids []string) (contextentry.BulkAnalyzeOutput, error) {
	var out contextentry.BulkAnalyzeOutput
	for _, id := range ids {
		entry, err := uc.getOwnedEntry(ctx, sc, id)
		if err != nil {
			out.Failed++
			continue
		}
		if _, err := uc.analyzeEntry(ctx, sc, entry); err != nil {
			out.Failed++
			continue
		}
		out.Processed++
	}
	return out, nil
}

// ProcessPending picks up at most batchSize pending entries across all users
// and analyzes them. It returns how many entries were processed successfully.
func (uc *implUseCase) ProcessPending(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 10
	}

	entries, _, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		Status:  string(model.ProcessingStatusPending),
		Limit:   batchSize,
		OrderBy: "created_at ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessPending ListEntries: %v", err)
		return 0, err
	}

	processed := 0
	for _, entry := range entries {
		sc := model.Scope{UserID: entry.UserID}
		if _, err := uc.analyzeEntry(ctx, sc, entry); err != nil {
			uc.l.Warnf(ctx, "uc.ProcessPending entry %s: %v", entry.ID, err)
			continue
		}
		processed++
	}
	return processed, nil
}
