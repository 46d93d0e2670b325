package usecase_test

import (
	"context"
	"errors"
	"testing"

	"smart-todo-backend/internal/analyzer"
	"smart-todo-backend/internal/contextentry"
	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/contextentry/usecase"
	"smart-todo-backend/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	entries      map[string]model.ContextEntry
	statuses     []model.ProcessingStatus
	analyses     []repo.SaveEntryAnalysisOptions
	insights     map[string][]model.ContextInsight
	logs         []repo.CreateProcessingLogOptions
	summary      repo.SummaryRow
	actionable   int
	listResult   []model.ContextEntry
	failAnalysis bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		entries:  map[string]model.ContextEntry{},
		insights: map[string][]model.ContextInsight{},
	}
}

func (m *mockRepo) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (model.ContextEntry, error) {
	e := model.ContextEntry{
		ID:               opt.ID,
		UserID:           opt.UserID,
		Content:          opt.Content,
		SourceType:       opt.SourceType,
		ProcessingStatus: model.ProcessingStatusPending,
	}
	m.entries[e.ID] = e
	return e, nil
}

func (m *mockRepo) GetOneEntry(ctx context.Context, opt repo.GetOneEntryOptions) (model.ContextEntry, error) {
	e, ok := m.entries[opt.ID]
	if !ok || (opt.UserID != "" && e.UserID != opt.UserID) {
		return model.ContextEntry{}, nil
	}
	return e, nil
}

func (m *mockRepo) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.ContextEntry, int, error) {
	return m.listResult, len(m.listResult), nil
}

func (m *mockRepo) UpdateEntryContent(ctx context.Context, opt repo.UpdateEntryContentOptions) (model.ContextEntry, error) {
	e := m.entries[opt.ID]
	e.Content = opt.Content
	e.SourceType = opt.SourceType
	e.ProcessingStatus = model.ProcessingStatusPending
	m.entries[opt.ID] = e
	return e, nil
}

func (m *mockRepo) DeleteEntry(ctx context.Context, userID, id string) error {
	delete(m.entries, id)
	return nil
}

func (m *mockRepo) SetEntryStatus(ctx context.Context, id string, status model.ProcessingStatus) error {
	m.statuses = append(m.statuses, status)
	e := m.entries[id]
	e.ProcessingStatus = status
	m.entries[id] = e
	return nil
}

func (m *mockRepo) SaveEntryAnalysis(ctx context.Context, opt repo.SaveEntryAnalysisOptions) (model.ContextEntry, error) {
	if m.failAnalysis {
		return model.ContextEntry{}, errors.New("db error")
	}
	m.analyses = append(m.analyses, opt)
	e := m.entries[opt.ID]
	e.ProcessingStatus = model.ProcessingStatusCompleted
	e.RelevanceScore = opt.RelevanceScore
	e.SentimentScore = opt.SentimentScore
	e.UrgencyIndicator = opt.UrgencyIndicator
	e.ExtractedTasks = opt.ExtractedTasks
	e.Keywords = opt.Keywords
	m.entries[opt.ID] = e
	return e, nil
}

func (m *mockRepo) SummaryCounts(ctx context.Context, userID string) (repo.SummaryRow, error) {
	return m.summary, nil
}

func (m *mockRepo) ReplaceInsights(ctx context.Context, entryID string, opts []repo.CreateInsightOptions) ([]model.ContextInsight, error) {
	var out []model.ContextInsight
	for _, opt := range opts {
		out = append(out, model.ContextInsight{
			ID:              opt.ID,
			ContextEntryID:  entryID,
			UserID:          opt.UserID,
			InsightType:     opt.InsightType,
			Content:         opt.Content,
			ConfidenceScore: opt.ConfidenceScore,
			IsActionable:    opt.IsActionable,
		})
	}
	m.insights[entryID] = out
	return out, nil
}

func (m *mockRepo) ListInsights(ctx context.Context, opt repo.ListInsightsOptions) ([]model.ContextInsight, int, error) {
	var out []model.ContextInsight
	for _, list := range m.insights {
		out = append(out, list...)
	}
	return out, len(out), nil
}

func (m *mockRepo) GetOneInsight(ctx context.Context, opt repo.GetOneInsightOptions) (model.ContextInsight, error) {
	for _, list := range m.insights {
		for _, in := range list {
			if in.ID == opt.ID && in.UserID == opt.UserID {
				return in, nil
			}
		}
	}
	return model.ContextInsight{}, nil
}

func (m *mockRepo) ListEntryInsights(ctx context.Context, entryID string) ([]model.ContextInsight, error) {
	return m.insights[entryID], nil
}

func (m *mockRepo) CountActionableInsights(ctx context.Context, userID string) (int, error) {
	return m.actionable, nil
}

func (m *mockRepo) CreateProcessingLog(ctx context.Context, opt repo.CreateProcessingLogOptions) error {
	m.logs = append(m.logs, opt)
	return nil
}

type mockAnalyzer struct {
	contextAnalysis analyzer.ContextAnalysis
	err             error
}

func (m *mockAnalyzer) AnalyzeTask(ctx context.Context, sc model.Scope, t model.Task) (analyzer.TaskAnalysis, error) {
	return analyzer.TaskAnalysis{}, nil
}

func (m *mockAnalyzer) PrioritizeTasks(ctx context.Context, sc model.Scope, tasks []model.Task) (analyzer.Prioritization, error) {
	return analyzer.Prioritization{}, nil
}

func (m *mockAnalyzer) AnalyzeContext(ctx context.Context, sc model.Scope, entry model.ContextEntry) (analyzer.ContextAnalysis, error) {
	if m.err != nil {
		return analyzer.ContextAnalysis{}, m.err
	}
	return m.contextAnalysis, nil
}

var sc = model.Scope{UserID: "u1", Email: "u1@example.com"}

func newTestUseCase(r *mockRepo, az *mockAnalyzer) contextentry.UseCase {
	if az == nil {
		az = &mockAnalyzer{}
	}
	return usecase.New(r, az, nil, &mockLogger{})
}

func TestCreateDefaultsToManualSource(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(r, nil)

	out, err := uc.Create(context.Background(), sc, contextentry.CreateInput{Content: "Remember to call the dentist"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Entry.SourceType != model.ContextSourceManual {
		t.Errorf("SourceType = %q, want manual", out.Entry.SourceType)
	}
	if out.Entry.ProcessingStatus != model.ProcessingStatusPending {
		t.Errorf("ProcessingStatus = %q, want pending", out.Entry.ProcessingStatus)
	}
}

func TestCreateValidation(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	cases := []struct {
		name  string
		input contextentry.CreateInput
		want  error
	}{
		{"empty content", contextentry.CreateInput{Content: "   "}, contextentry.ErrEmptyContent},
		{"bad source", contextentry.CreateInput{Content: "hello", SourceType: "carrier-pigeon"}, contextentry.ErrInvalidSource},
	}
	for _, tc := range cases {
		if _, err := uc.Create(context.Background(), sc, tc.input); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	r := newMockRepo()
	r.entries["e1"] = model.ContextEntry{
		ID: "e1", UserID: "u1", Content: "Send the report by friday",
		SourceType: model.ContextSourceEmail, ProcessingStatus: model.ProcessingStatusPending,
	}
	az := &mockAnalyzer{contextAnalysis: analyzer.ContextAnalysis{
		RelevanceScore:   80,
		SentimentScore:   -0.2,
		UrgencyIndicator: 60,
		Keywords:         []string{"report", "friday"},
		Insights: []analyzer.InsightDraft{
			{Type: model.InsightTypeTask, Content: "Send the report", Confidence: 75, Actionable: true},
		},
	}}
	uc := newTestUseCase(r, az)

	out, err := uc.Analyze(context.Background(), sc, "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Entry.ProcessingStatus != model.ProcessingStatusCompleted {
		t.Errorf("ProcessingStatus = %q, want completed", out.Entry.ProcessingStatus)
	}
	if out.Entry.RelevanceScore != 80 {
		t.Errorf("RelevanceScore = %d, want 80", out.Entry.RelevanceScore)
	}
	if len(out.Insights) != 1 || out.Insights[0].Content != "Send the report" {
		t.Errorf("Insights = %+v, want the extracted insight", out.Insights)
	}
	if len(r.statuses) == 0 || r.statuses[0] != model.ProcessingStatusProcessing {
		t.Error("entry must pass through the processing status first")
	}
	if len(r.logs) != 1 || r.logs[0].Status != model.ProcessingStatusCompleted {
		t.Errorf("logs = %+v, want one completed row", r.logs)
	}
}

func TestAnalyzeMarksFailedOnStoreError(t *testing.T) {
	r := newMockRepo()
	r.entries["e1"] = model.ContextEntry{
		ID: "e1", UserID: "u1", Content: "whatever",
		SourceType: model.ContextSourceNotes, ProcessingStatus: model.ProcessingStatusPending,
	}
	r.failAnalysis = true
	uc := newTestUseCase(r, nil)

	if _, err := uc.Analyze(context.Background(), sc, "e1"); err == nil {
		t.Fatal("expected the store error to surface")
	}
	if got := r.entries["e1"].ProcessingStatus; got != model.ProcessingStatusFailed {
		t.Errorf("ProcessingStatus = %q, want failed", got)
	}
	if len(r.logs) != 1 || r.logs[0].Status != model.ProcessingStatusFailed {
		t.Errorf("logs = %+v, want one failed row", r.logs)
	}
}

func TestAnalyzeNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	if _, err := uc.Analyze(context.Background(), sc, "missing"); !errors.Is(err, contextentry.ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestBulkAnalyzeCountsFailures(t *testing.T) {
	r := newMockRepo()
	r.entries["e1"] = model.ContextEntry{ID: "e1", UserID: "u1", Content: "one", SourceType: model.ContextSourceNotes}
	uc := newTestUseCase(r, nil)

	out, err := uc.BulkAnalyze(context.Background(), sc, []string{"e1", "missing"})
	if err != nil {
		t.Fatalf("bulk analyze must not fail as a whole: %v", err)
	}
	if out.Processed != 1 || out.Failed != 1 {
		t.Errorf("Processed/Failed = %d/%d, want 1/1", out.Processed, out.Failed)
	}
}

func TestProcessPending(t *testing.T) {
	r := newMockRepo()
	r.entries["e1"] = model.ContextEntry{ID: "e1", UserID: "u1", Content: "one", SourceType: model.ContextSourceNotes}
	r.entries["e2"] = model.ContextEntry{ID: "e2", UserID: "u2", Content: "two", SourceType: model.ContextSourceEmail}
	r.listResult = []model.ContextEntry{r.entries["e1"], r.entries["e2"]}
	uc := newTestUseCase(r, nil)

	processed, err := uc.ProcessPending(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed != 2 {
		t.Errorf("processed = %d, want 2", processed)
	}
	if len(r.analyses) != 2 {
		t.Errorf("stored analyses = %d, want 2", len(r.analyses))
	}
}

func TestUpdateNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	_, err := uc.Update(context.Background(), sc, contextentry.UpdateInput{ID: "missing", Content: "new"})
	if !errors.Is(err, contextentry.ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestSummary(t *testing.T) {
	r := newMockRepo()
	r.summary = repo.SummaryRow{
		Total: 5, Pending: 2, Completed: 3, HighRelevance: 1, WithExtractedTasks: 2,
		AvgRelevance: 62.4, RecentActivity: 3,
		BySource: map[model.ContextSource]int{model.ContextSourceEmail: 3, model.ContextSourceManual: 2},
	}
	r.actionable = 4
	uc := newTestUseCase(r, nil)

	out, err := uc.Summary(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary.Total != 5 || out.Summary.ActionableInsights != 4 {
		t.Errorf("Summary = %+v, want totals carried through", out.Summary)
	}
	if out.Summary.BySource[model.ContextSourceEmail] != 3 {
		t.Errorf("BySource[email] = %d, want 3", out.Summary.BySource[model.ContextSourceEmail])
	}
	if out.Summary.AvgRelevanceScore != 62.4 {
		t.Errorf("AvgRelevanceScore = %f, want 62.4", out.Summary.AvgRelevanceScore)
	}
	if out.Summary.RecentActivity != 3 {
		t.Errorf("RecentActivity = %d, want 3", out.Summary.RecentActivity)
	}
}

func TestImportCalendarNotConfigured(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	_, err := uc.ImportCalendar(context.Background(), sc, contextentry.ImportCalendarInput{})
	if !errors.Is(err, contextentry.ErrCalendarNotEnabled) {
		t.Errorf("err = %v, want ErrCalendarNotEnabled", err)
	}
}

func TestInsightDetail(t *testing.T) {
	r := newMockRepo()
	r.insights["e1"] = []model.ContextInsight{
		{ID: "i1", ContextEntryID: "e1", UserID: "u1", InsightType: model.InsightTypeDeadline, Content: "report due friday"},
	}
	uc := newTestUseCase(r, nil)

	in, err := uc.InsightDetail(context.Background(), sc, "i1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Content != "report due friday" {
		t.Errorf("Content = %q", in.Content)
	}

	if _, err := uc.InsightDetail(context.Background(), sc, "missing"); !errors.Is(err, contextentry.ErrInsightNotFound) {
		t.Errorf("err = %v, want ErrInsightNotFound", err)
	}
}

func TestListInsightsHighConfidenceFilter(t *testing.T) {
	r := newMockRepo()
	r.insights["e1"] = []model.ContextInsight{
		{ID: "i1", ContextEntryID: "e1", UserID: "u1", InsightType: model.InsightTypeTask, ConfidenceScore: 90},
	}
	uc := newTestUseCase(r, nil)

	out, err := uc.ListInsights(context.Background(), sc, contextentry.InsightListInput{HighConfidence: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 1 {
		t.Errorf("Total = %d, want 1", out.Total)
	}
}
