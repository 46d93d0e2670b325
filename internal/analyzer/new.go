package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"

	aiRepo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/datemath"
	"smart-todo-backend/pkg/llmprovider"
	"smart-todo-backend/pkg/log"
)

// llmClient is the slice of llmprovider.Manager the analyzer needs.
type llmClient interface {
	HasProviders() bool
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implAnalyzer struct {
	llm           llmClient
	repo          aiRepo.Repository
	dates         *datemath.Parser
	minConfidence int
	l             log.Logger
	now           func() time.Time
}

// New creates an Analyzer backed by the LLM provider manager with a
// heuristic fallback. llm may be nil when no provider is configured.
// minConfidence is the insight confidence floor applied for users who
// never saved preferences.
func New(llm llmClient, repo aiRepo.Repository, dates *datemath.Parser, minConfidence int, l log.Logger) *implAnalyzer {
	return &implAnalyzer{
		llm:           llm,
		repo:          repo,
		dates:         dates,
		minConfidence: minConfidence,
		l:             l,
		now:           time.Now,
	}
}

func (a *implAnalyzer) hasLLM() bool {
	return a.llm != nil && a.llm.HasProviders()
}

// recordRequest writes one audit row. Failures are logged, never propagated.
func (a *implAnalyzer) recordRequest(ctx context.Context, sc model.Scope, reqType model.AIRequestType, resp *llmprovider.Response, llmErr error, started time.Time) {
	if a.repo == nil {
		return
	}

	opt := aiRepo.CreateAIRequestOptions{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		RequestType: reqType,
		Status:      model.AIRequestStatusCompleted,
		DurationMS:  time.Since(started).Milliseconds(),
	}
	if resp != nil {
		opt.ProviderName = resp.ProviderName
		opt.ModelName = resp.ModelName
		if resp.Usage != nil {
			opt.PromptTokens = resp.Usage.InputTokens
			opt.OutputTokens = resp.Usage.OutputTokens
		}
	}
	if llmErr != nil {
		// Heuristic fallback still answered; keep the provider error for the audit trail.
		opt.ErrorDetail = llmErr.Error()
	}

	if _, err := a.repo.CreateAIRequest(ctx, opt); err != nil {
		a.l.Warnf(ctx, "analyzer.recordRequest: %v", err)
	}
}
