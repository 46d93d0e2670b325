package analyzer

import (
	"context"

	"smart-todo-backend/internal/model"
)

// Analyzer produces AI analyses of tasks and captured context. Every call
// returns a usable result: when no LLM provider answers, a deterministic
// heuristic produces the same response shape.
//
//go:generate mockery --name Analyzer
type Analyzer interface {
	AnalyzeTask(ctx context.Context, sc model.Scope, task model.Task) (TaskAnalysis, error)
	PrioritizeTasks(ctx context.Context, sc model.Scope, tasks []model.Task) (Prioritization, error)
	AnalyzeContext(ctx context.Context, sc model.Scope, entry model.ContextEntry) (ContextAnalysis, error)
}
