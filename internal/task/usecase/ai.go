package usecase

import (
	"context"

	"github.com/google/uuid"

	aiRepo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// Analyze runs the analyzer over one task, stores the result, and keeps the
// suggested deadline on the task row for listings.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, id string) (task.AnalysisOutput, error) {
	existing, err := uc.getOwnedTask(ctx, sc, id)
	if err != nil {
		return task.AnalysisOutput{}, err
	}

	analysis, err := uc.analyzer.AnalyzeTask(ctx, sc, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze AnalyzeTask: %v", err)
		return task.AnalysisOutput{}, err
	}

	if _, err := uc.aiRepo.SaveTaskAnalysis(ctx, aiRepo.SaveTaskAnalysisOptions{
		ID:                    uuid.NewString(),
		TaskID:                existing.ID,
		UserID:                sc.UserID,
		SuggestedScore:        analysis.Priority.SuggestedScore,
		ScoreFactors:          analysis.Priority.Factors,
		ScoreConfidence:       analysis.Priority.Confidence,
		SuggestedDeadline:     analysis.Deadline.SuggestedDeadline,
		DeadlineReasoning:     analysis.Deadline.Reasoning,
		DeadlineConfidence:    analysis.Deadline.Confidence,
		SuggestedCategory:     analysis.SuggestedCategory,
		EnhancementSuggestion: analysis.EnhancementSuggestions,
		ProviderName:          analysis.ProviderName,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Analyze SaveTaskAnalysis: %v", err)
		return task.AnalysisOutput{}, err
	}

	if analysis.Deadline.SuggestedDeadline != nil {
		reasoning := analysis.Deadline.Reasoning
		if err := uc.repo.SetAISuggestion(ctx, repo.SetAISuggestionOptions{
			ID:                existing.ID,
			UserID:            sc.UserID,
			SuggestedDeadline: analysis.Deadline.SuggestedDeadline,
			Reasoning:         reasoning,
		}); err != nil {
			uc.l.Warnf(ctx, "uc.Analyze SetAISuggestion: %v", err)
		}
		existing.AISuggestedDeadline = analysis.Deadline.SuggestedDeadline
		existing.AIReasoning = reasoning
	}

	return task.AnalysisOutput{Task: existing, Analysis: analysis}, nil
}

// Prioritize ranks the named tasks, or all of the user's open tasks
// when no ids are given.
func (uc *implUseCase) Prioritize(ctx context.Context, sc model.Scope, input task.PrioritizeInput) (task.PrioritizationOutput, error) {
	var candidates []model.Task
	if len(input.TaskIDs) > 0 {
		owned, err := uc.repo.CountOwnedTasks(ctx, sc.UserID, input.TaskIDs)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Prioritize CountOwnedTasks: %v", err)
			return task.PrioritizationOutput{}, err
		}
		if owned != len(input.TaskIDs) {
			return task.PrioritizationOutput{}, task.ErrTasksNotOwned
		}
		for _, id := range input.TaskIDs {
			t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
			if err != nil {
				uc.l.Errorf(ctx, "uc.Prioritize GetOneTask: %v", err)
				return task.PrioritizationOutput{}, err
			}
			candidates = append(candidates, t)
		}
	} else {
		open, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
			UserID:   sc.UserID,
			OpenOnly: true,
			Now:      uc.now(),
			OrderBy:  "t.priority_score DESC",
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Prioritize ListTasks: %v", err)
			return task.PrioritizationOutput{}, err
		}
		candidates = open
	}

	result, err := uc.analyzer.PrioritizeTasks(ctx, sc, candidates)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prioritize PrioritizeTasks: %v", err)
		return task.PrioritizationOutput{}, err
	}
	return task.PrioritizationOutput{Result: result}, nil
}
