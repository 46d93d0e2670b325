package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	aiRepo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/datemath"
	"smart-todo-backend/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}

type mockAIRepo struct {
	requests []aiRepo.CreateAIRequestOptions
	prefs    model.UserAIPreferences
}

func (m *mockAIRepo) CreateAIRequest(ctx context.Context, opt aiRepo.CreateAIRequestOptions) (model.AIRequest, error) {
	m.requests = append(m.requests, opt)
	return model.AIRequest{ID: opt.ID}, nil
}

func (m *mockAIRepo) ListAIRequests(ctx context.Context, opt aiRepo.ListAIRequestsOptions) ([]model.AIRequest, int, error) {
	return nil, 0, nil
}

func (m *mockAIRepo) GetPreferences(ctx context.Context, userID string) (model.UserAIPreferences, error) {
	return m.prefs, nil
}

func (m *mockAIRepo) UpsertPreferences(ctx context.Context, opt aiRepo.UpsertPreferencesOptions) (model.UserAIPreferences, error) {
	return model.UserAIPreferences{}, nil
}

func (m *mockAIRepo) SaveTaskAnalysis(ctx context.Context, opt aiRepo.SaveTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	return model.TaskAIAnalysis{}, nil
}

func (m *mockAIRepo) GetOneTaskAnalysis(ctx context.Context, opt aiRepo.GetOneTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	return model.TaskAIAnalysis{}, nil
}

type mockLLM struct {
	text string
	err  error
}

func (m *mockLLM) HasProviders() bool { return true }

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "openai", ModelName: "gpt-4o-mini"}, nil
}

func newTestAnalyzer(llm llmClient, repo aiRepo.Repository, now time.Time) *implAnalyzer {
	dates, _ := datemath.NewParser("UTC")
	a := New(llm, repo, dates, 70, &mockLogger{})
	a.now = func() time.Time { return now }
	return a
}

var testNow = time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

func TestHeuristicTaskAnalysisUrgency(t *testing.T) {
	repo := &mockAIRepo{}
	a := newTestAnalyzer(nil, repo, testNow)

	deadline := testNow.Add(-time.Hour)
	task := model.Task{
		ID:       "t1",
		Title:    "Urgent: fix the login bug",
		Priority: model.TaskPriorityHigh,
		Deadline: &deadline,
	}

	analysis, err := a.AnalyzeTask(context.Background(), model.Scope{UserID: "u1"}, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50 base + 25 urgent + 10 high priority + 30 overdue = 100 after clamping
	if analysis.Priority.SuggestedScore != 100 {
		t.Errorf("SuggestedScore = %d, want 100", analysis.Priority.SuggestedScore)
	}
	if analysis.ProviderName != "" {
		t.Errorf("expected heuristic result, got provider %q", analysis.ProviderName)
	}
	if analysis.Deadline.Confidence != 90 {
		t.Errorf("existing deadline should report confidence 90, got %d", analysis.Deadline.Confidence)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected 1 audit row, got %d", len(repo.requests))
	}
	if repo.requests[0].RequestType != model.AIRequestTypeTaskAnalysis {
		t.Errorf("audit request type = %q", repo.requests[0].RequestType)
	}
}

func TestHeuristicTaskAnalysisNeutral(t *testing.T) {
	a := newTestAnalyzer(nil, &mockAIRepo{}, testNow)

	analysis, err := a.AnalyzeTask(context.Background(), model.Scope{UserID: "u1"}, model.Task{
		ID:       "t2",
		Title:    "Water the office plants regularly",
		Priority: model.TaskPriorityMedium,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Priority.SuggestedScore != model.DefaultPriorityScore {
		t.Errorf("SuggestedScore = %d, want %d", analysis.Priority.SuggestedScore, model.DefaultPriorityScore)
	}
	if analysis.Deadline.SuggestedDeadline == nil {
		t.Fatal("expected a default deadline suggestion")
	}
	want := time.Date(2025, 6, 14, 17, 0, 0, 0, time.UTC)
	if !analysis.Deadline.SuggestedDeadline.Equal(want) {
		t.Errorf("suggested deadline = %v, want %v", analysis.Deadline.SuggestedDeadline, want)
	}
}

func TestHeuristicDeadlineFromMention(t *testing.T) {
	a := newTestAnalyzer(nil, &mockAIRepo{}, testNow)

	analysis, err := a.AnalyzeTask(context.Background(), model.Scope{UserID: "u1"}, model.Task{
		ID:    "t3",
		Title: "Send the report by friday",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Deadline.SuggestedDeadline == nil {
		t.Fatal("expected a deadline from the date mention")
	}
	if analysis.Deadline.Confidence != 75 {
		t.Errorf("mention-based deadline confidence = %d, want 75", analysis.Deadline.Confidence)
	}
}

func TestAnalyzeTaskLLMSuccess(t *testing.T) {
	repo := &mockAIRepo{}
	llm := &mockLLM{text: "```json\n" + `{
		"suggested_priority_score": 82,
		"factors": ["blocking a release"],
		"confidence": 88,
		"suggested_deadline": "2025-06-13",
		"deadline_reasoning": "release cut is friday",
		"deadline_confidence": 70,
		"suggested_category": "Work",
		"enhancement_suggestions": ["Link the release ticket"]
	}` + "\n```"}
	a := newTestAnalyzer(llm, repo, testNow)

	analysis, err := a.AnalyzeTask(context.Background(), model.Scope{UserID: "u1"}, model.Task{ID: "t4", Title: "Ship it"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.ProviderName != "openai" {
		t.Errorf("ProviderName = %q, want openai", analysis.ProviderName)
	}
	if analysis.Priority.SuggestedScore != 82 {
		t.Errorf("SuggestedScore = %d, want 82", analysis.Priority.SuggestedScore)
	}
	if analysis.SuggestedCategory != "Work" {
		t.Errorf("SuggestedCategory = %q, want Work", analysis.SuggestedCategory)
	}
	if analysis.Deadline.SuggestedDeadline == nil {
		t.Fatal("expected parsed deadline")
	}
	if len(repo.requests) != 1 || repo.requests[0].ProviderName != "openai" {
		t.Errorf("audit row should record the provider, got %+v", repo.requests)
	}
}

func TestAnalyzeTaskLLMFailureFallsBack(t *testing.T) {
	repo := &mockAIRepo{}
	llm := &mockLLM{err: errors.New("provider down")}
	a := newTestAnalyzer(llm, repo, testNow)

	analysis, err := a.AnalyzeTask(context.Background(), model.Scope{UserID: "u1"}, model.Task{ID: "t5", Title: "Write minutes from the meeting"})
	if err != nil {
		t.Fatalf("fallback must not surface provider errors, got: %v", err)
	}
	if analysis.ProviderName != "" {
		t.Errorf("expected heuristic result, got provider %q", analysis.ProviderName)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected 1 audit row, got %d", len(repo.requests))
	}
	if repo.requests[0].ErrorDetail == "" {
		t.Error("audit row should keep the provider error detail")
	}
}

func TestPrioritizeTasksEmpty(t *testing.T) {
	a := newTestAnalyzer(nil, &mockAIRepo{}, testNow)

	result, err := a.PrioritizeTasks(context.Background(), model.Scope{UserID: "u1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary.TotalTasksAnalyzed != 0 {
		t.Errorf("TotalTasksAnalyzed = %d, want 0", result.Summary.TotalTasksAnalyzed)
	}
	if len(result.Summary.Recommendations) == 0 {
		t.Error("expected a recommendation for the empty set")
	}
}

func TestHeuristicPrioritizationRanksOverdueFirst(t *testing.T) {
	a := newTestAnalyzer(nil, &mockAIRepo{}, testNow)

	overdueDeadline := testNow.Add(-48 * time.Hour)
	tasks := []model.Task{
		{ID: "fresh", PriorityScore: 50, Status: model.TaskStatusTodo},
		{ID: "overdue", PriorityScore: 55, Status: model.TaskStatusTodo, Deadline: &overdueDeadline},
	}

	result, err := a.PrioritizeTasks(context.Background(), model.Scope{UserID: "u1"}, tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tasks[0].TaskID != "overdue" {
		t.Errorf("top ranked = %q, want overdue", result.Tasks[0].TaskID)
	}
	if result.Tasks[0].SuggestedScore != 80 {
		t.Errorf("overdue suggested score = %d, want 80", result.Tasks[0].SuggestedScore)
	}
	if result.Tasks[0].Ranking != 1 || result.Tasks[1].Ranking != 2 {
		t.Errorf("rankings not sequential: %+v", result.Tasks)
	}
	if result.Summary.HighPriorityCount != 1 {
		t.Errorf("HighPriorityCount = %d, want 1", result.Summary.HighPriorityCount)
	}
}

func TestHeuristicContextAnalysis(t *testing.T) {
	a := newTestAnalyzer(nil, &mockAIRepo{}, testNow)

	entry := model.ContextEntry{
		ID:      "c1",
		Content: "Urgent: the client is frustrated.\nPlease send the quarterly report by friday.",
	}

	result, err := a.AnalyzeContext(context.Background(), model.Scope{UserID: "u1"}, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UrgencyIndicator < 80 {
		t.Errorf("UrgencyIndicator = %d, want >= 80 for urgent language", result.UrgencyIndicator)
	}
	if result.SentimentScore >= 0 {
		t.Errorf("SentimentScore = %f, want negative", result.SentimentScore)
	}
	if len(result.ExtractedTasks) == 0 {
		t.Fatal("expected an extracted task from the action line")
	}
	if result.ExtractedTasks[0].Deadline == nil {
		t.Error("extracted task should carry the friday deadline")
	}
	if len(result.Insights) == 0 {
		t.Error("expected insights")
	}
	if len(result.Keywords) == 0 {
		t.Error("expected keywords")
	}
}

func TestAnalyzeContextDropsLowConfidenceInsights(t *testing.T) {
	llm := &mockLLM{text: `{
		"relevance_score": 60,
		"sentiment_score": 0,
		"urgency_indicator": 40,
		"keywords": ["report"],
		"extracted_tasks": [],
		"insights": [
			{"type": "task", "content": "weak hunch", "confidence": 40, "actionable": true},
			{"type": "task", "content": "solid lead", "confidence": 90, "actionable": true}
		]
	}`}
	a := newTestAnalyzer(llm, &mockAIRepo{}, testNow)

	result, err := a.AnalyzeContext(context.Background(), model.Scope{UserID: "u1"}, model.ContextEntry{ID: "c1", Content: "notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Insights) != 1 {
		t.Fatalf("got %d insights, want only the one above the 70 floor", len(result.Insights))
	}
	if result.Insights[0].Content != "solid lead" {
		t.Errorf("kept insight = %q, want the high-confidence one", result.Insights[0].Content)
	}
}

func TestAnalyzeContextUsesUserThreshold(t *testing.T) {
	llm := &mockLLM{text: `{
		"relevance_score": 60,
		"sentiment_score": 0,
		"urgency_indicator": 40,
		"keywords": [],
		"extracted_tasks": [],
		"insights": [
			{"type": "task", "content": "weak hunch", "confidence": 40, "actionable": true},
			{"type": "task", "content": "solid lead", "confidence": 90, "actionable": true}
		]
	}`}
	repo := &mockAIRepo{prefs: model.UserAIPreferences{UserID: "u1", MinConfidenceThreshold: 30}}
	a := newTestAnalyzer(llm, repo, testNow)

	result, err := a.AnalyzeContext(context.Background(), model.Scope{UserID: "u1"}, model.ContextEntry{ID: "c1", Content: "notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Insights) != 2 {
		t.Fatalf("got %d insights, want both with the user floor at 30", len(result.Insights))
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {50, 50}, {100, 100}, {140, 100},
	}
	for _, tc := range cases {
		if got := clampScore(tc.in); got != tc.want {
			t.Errorf("clampScore(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTopKeywords(t *testing.T) {
	got := topKeywords("report report report meeting meeting budget", 2)
	if len(got) != 2 || got[0] != "report" || got[1] != "meeting" {
		t.Errorf("topKeywords = %v, want [report meeting]", got)
	}
}
