package analyzer

import (
	"context"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/llmprovider"
)

// AnalyzeContext mines a captured entry for tasks, deadlines and sentiment.
// Insights below the user's confidence threshold are dropped.
func (a *implAnalyzer) AnalyzeContext(ctx context.Context, sc model.Scope, entry model.ContextEntry) (ContextAnalysis, error) {
	started := a.now()
	threshold := a.confidenceFloor(ctx, sc)

	var llmErr error
	var resp *llmprovider.Response
	if a.hasLLM() {
		resp, llmErr = a.llm.GenerateContent(ctx, &llmprovider.Request{
			System:      systemPrompt,
			Messages:    []llmprovider.Message{{Role: "user", Text: a.buildContextPrompt(entry)}},
			Temperature: 0.2,
			MaxTokens:   2048,
		})
		if llmErr == nil {
			var parsed llmContextAnalysis
			if err := parseLLMJSON(resp.Text, &parsed); err != nil {
				a.l.Warnf(ctx, "analyzer.AnalyzeContext parse: %v", err)
				llmErr = err
			} else {
				analysis := a.convertContextAnalysis(parsed)
				analysis.ProviderName = resp.ProviderName
				analysis.Insights = dropLowConfidence(analysis.Insights, threshold)
				a.recordRequest(ctx, sc, model.AIRequestTypeContextAnalysis, resp, nil, started)
				return analysis, nil
			}
		}
	}

	analysis := a.heuristicContextAnalysis(entry)
	analysis.Insights = dropLowConfidence(analysis.Insights, threshold)
	a.recordRequest(ctx, sc, model.AIRequestTypeContextAnalysis, nil, llmErr, started)
	return analysis, nil
}

// confidenceFloor resolves the per-user minimum insight confidence,
// falling back to the configured default when the user never saved
// preferences.
func (a *implAnalyzer) confidenceFloor(ctx context.Context, sc model.Scope) int {
	if a.repo == nil || sc.UserID == "" {
		return a.minConfidence
	}
	prefs, err := a.repo.GetPreferences(ctx, sc.UserID)
	if err != nil || prefs.UserID == "" {
		return a.minConfidence
	}
	return prefs.MinConfidenceThreshold
}

func dropLowConfidence(drafts []InsightDraft, threshold int) []InsightDraft {
	if threshold <= 0 {
		return drafts
	}
	kept := drafts[:0]
	for _, d := range drafts {
		if d.Confidence >= threshold {
			kept = append(kept, d)
		}
	}
	return kept
}

func (a *implAnalyzer) convertContextAnalysis(parsed llmContextAnalysis) ContextAnalysis {
	sentiment := parsed.SentimentScore
	if sentiment > 1 {
		sentiment = 1
	}
	if sentiment < -1 {
		sentiment = -1
	}

	out := ContextAnalysis{
		RelevanceScore:   clampScore(parsed.RelevanceScore),
		SentimentScore:   sentiment,
		UrgencyIndicator: clampScore(parsed.UrgencyIndicator),
		Keywords:         parsed.Keywords,
	}
	for _, et := range parsed.ExtractedTasks {
		if et.Title == "" {
			continue
		}
		out.ExtractedTasks = append(out.ExtractedTasks, model.ExtractedTask{
			Title:      et.Title,
			Deadline:   et.Deadline.t,
			Confidence: clampScore(et.Confidence),
		})
	}
	for _, in := range parsed.Insights {
		if in.Content == "" {
			continue
		}
		insightType := model.InsightType(in.Type)
		switch insightType {
		case model.InsightTypeTask, model.InsightTypeDeadline, model.InsightTypePriority,
			model.InsightTypeContact, model.InsightTypeMeeting, model.InsightTypeProject:
		default:
			insightType = model.InsightTypeOther
		}
		out.Insights = append(out.Insights, InsightDraft{
			Type:       insightType,
			Content:    in.Content,
			Confidence: clampScore(in.Confidence),
			Actionable: in.Actionable,
		})
	}
	return out
}
