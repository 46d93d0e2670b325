package analyzer

import (
	"context"
	"sort"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/llmprovider"
)

// AnalyzeTask produces a priority and deadline analysis for one task.
func (a *implAnalyzer) AnalyzeTask(ctx context.Context, sc model.Scope, task model.Task) (TaskAnalysis, error) {
	started := a.now()

	var llmErr error
	var resp *llmprovider.Response
	if a.hasLLM() {
		resp, llmErr = a.llm.GenerateContent(ctx, &llmprovider.Request{
			System:      systemPrompt,
			Messages:    []llmprovider.Message{{Role: "user", Text: a.buildTaskPrompt(task)}},
			Temperature: 0.2,
			MaxTokens:   1024,
		})
		if llmErr == nil {
			var parsed llmTaskAnalysis
			if err := parseLLMJSON(resp.Text, &parsed); err != nil {
				a.l.Warnf(ctx, "analyzer.AnalyzeTask parse: %v", err)
				llmErr = err
			} else {
				analysis := TaskAnalysis{
					TaskID: task.ID,
					Priority: PriorityAnalysis{
						SuggestedScore: clampScore(parsed.SuggestedPriorityScore),
						Factors:        parsed.Factors,
						Confidence:     clampScore(parsed.Confidence),
					},
					Deadline: DeadlineSuggestion{
						SuggestedDeadline: parsed.SuggestedDeadline.t,
						Reasoning:         parsed.DeadlineReasoning,
						Confidence:        clampScore(parsed.DeadlineConfidence),
					},
					SuggestedCategory:      parsed.SuggestedCategory,
					EnhancementSuggestions: parsed.EnhancementSuggestions,
					ProviderName:           resp.ProviderName,
				}
				a.recordRequest(ctx, sc, model.AIRequestTypeTaskAnalysis, resp, nil, started)
				return analysis, nil
			}
		}
	}

	analysis := a.heuristicTaskAnalysis(task)
	a.recordRequest(ctx, sc, model.AIRequestTypeTaskAnalysis, nil, llmErr, started)
	return analysis, nil
}

// PrioritizeTasks ranks a set of open tasks.
func (a *implAnalyzer) PrioritizeTasks(ctx context.Context, sc model.Scope, tasks []model.Task) (Prioritization, error) {
	started := a.now()

	if len(tasks) == 0 {
		return Prioritization{
			Summary: PrioritizationSummary{Recommendations: []string{"No open tasks to prioritize"}},
		}, nil
	}

	var llmErr error
	var resp *llmprovider.Response
	if a.hasLLM() {
		resp, llmErr = a.llm.GenerateContent(ctx, &llmprovider.Request{
			System:      systemPrompt,
			Messages:    []llmprovider.Message{{Role: "user", Text: a.buildPrioritizationPrompt(tasks)}},
			Temperature: 0.2,
			MaxTokens:   2048,
		})
		if llmErr == nil {
			var parsed llmPrioritization
			if err := parseLLMJSON(resp.Text, &parsed); err != nil || len(parsed.PrioritizedTasks) == 0 {
				a.l.Warnf(ctx, "analyzer.PrioritizeTasks parse: %v", err)
				llmErr = err
			} else {
				result := a.mergePrioritization(tasks, parsed)
				result.ProviderName = resp.ProviderName
				a.recordRequest(ctx, sc, model.AIRequestTypePrioritization, resp, nil, started)
				return result, nil
			}
		}
	}

	result := a.heuristicPrioritization(tasks)
	a.recordRequest(ctx, sc, model.AIRequestTypePrioritization, nil, llmErr, started)
	return result, nil
}

// mergePrioritization joins LLM scores back onto the known task set; tasks
// the model skipped keep their current score.
func (a *implAnalyzer) mergePrioritization(tasks []model.Task, parsed llmPrioritization) Prioritization {
	suggested := map[string]struct {
		score     int
		reasoning string
	}{}
	for _, pt := range parsed.PrioritizedTasks {
		suggested[pt.TaskID] = struct {
			score     int
			reasoning string
		}{clampScore(pt.SuggestedPriorityScore), pt.Reasoning}
	}

	rankings := make([]TaskRanking, len(tasks))
	high := 0
	for i, t := range tasks {
		r := TaskRanking{
			TaskID:         t.ID,
			CurrentScore:   t.PriorityScore,
			SuggestedScore: t.PriorityScore,
			Reasoning:      "not ranked by the model",
		}
		if s, ok := suggested[t.ID]; ok {
			r.SuggestedScore = s.score
			r.Reasoning = s.reasoning
		}
		if r.SuggestedScore >= model.HighPriorityThreshold {
			high++
		}
		rankings[i] = r
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].SuggestedScore > rankings[j].SuggestedScore
	})
	for i := range rankings {
		rankings[i].Ranking = i + 1
	}

	recs := parsed.Recommendations
	if len(recs) == 0 {
		recs = []string{"Review the top ranked tasks first"}
	}

	return Prioritization{
		Tasks: rankings,
		Summary: PrioritizationSummary{
			TotalTasksAnalyzed: len(tasks),
			HighPriorityCount:  high,
			Recommendations:    recs,
		},
	}
}
