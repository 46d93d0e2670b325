package usecase_test

import (
	"context"
	"errors"
	"testing"

	"smart-todo-backend/internal/ai"
	repo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/ai/usecase"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/llmprovider"
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
	prefs    map[string]model.UserAIPreferences
	upserted []repo.UpsertPreferencesOptions
	requests []model.AIRequest
}

func (m *mockRepo) CreateAIRequest(ctx context.Context, opt repo.CreateAIRequestOptions) (model.AIRequest, error) {
	return model.AIRequest{ID: opt.ID}, nil
}

func (m *mockRepo) ListAIRequests(ctx context.Context, opt repo.ListAIRequestsOptions) ([]model.AIRequest, int, error) {
	return m.requests, len(m.requests), nil
}

func (m *mockRepo) GetPreferences(ctx context.Context, userID string) (model.UserAIPreferences, error) {
	return m.prefs[userID], nil
}

func (m *mockRepo) UpsertPreferences(ctx context.Context, opt repo.UpsertPreferencesOptions) (model.UserAIPreferences, error) {
	m.upserted = append(m.upserted, opt)
	saved := model.UserAIPreferences{
		UserID:                 opt.UserID,
		AutoAnalyzeContext:     opt.AutoAnalyzeContext,
		AutoSuggestDeadline:    opt.AutoSuggestDeadline,
		PreferredProvider:      opt.PreferredProvider,
		Timezone:               opt.Timezone,
		WorkdayStartHour:       opt.WorkdayStartHour,
		WorkdayEndHour:         opt.WorkdayEndHour,
		MinConfidenceThreshold: opt.MinConfidenceThreshold,
	}
	m.prefs[opt.UserID] = saved
	return saved, nil
}

func (m *mockRepo) SaveTaskAnalysis(ctx context.Context, opt repo.SaveTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	return model.TaskAIAnalysis{ID: opt.ID}, nil
}

func (m *mockRepo) GetOneTaskAnalysis(ctx context.Context, opt repo.GetOneTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	return model.TaskAIAnalysis{}, nil
}

type stubProvider struct {
	name  string
	model string
}

func (p *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{}, nil
}

func (p *stubProvider) Name() string  { return p.name }
func (p *stubProvider) Model() string { return p.model }

type mockProviderSource struct {
	providers []llmprovider.Provider
}

func (m *mockProviderSource) HasProviders() bool {
	return len(m.providers) > 0
}

func (m *mockProviderSource) Providers() []llmprovider.Provider {
	return m.providers
}

var sc = model.Scope{UserID: "u1", Email: "u1@example.com"}

func newTestUseCase(r *mockRepo, providers ...llmprovider.Provider) ai.UseCase {
	if r.prefs == nil {
		r.prefs = map[string]model.UserAIPreferences{}
	}
	return usecase.New(r, &mockProviderSource{providers: providers}, &mockLogger{})
}

func ptr[T any](v T) *T { return &v }

func TestProviders(t *testing.T) {
	uc := newTestUseCase(&mockRepo{},
		&stubProvider{name: "openai", model: "gpt-4o-mini"},
		&stubProvider{name: "gemini", model: "gemini-1.5-flash"},
	)

	out, err := uc.Providers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Available {
		t.Error("Available should be true with providers configured")
	}
	if len(out.Providers) != 2 || out.Providers[0].Name != "openai" {
		t.Errorf("Providers = %+v", out.Providers)
	}
}

func TestProvidersEmpty(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	out, err := uc.Providers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Available {
		t.Error("Available should be false with no providers")
	}
	if out.Providers == nil {
		t.Error("Providers must be an empty slice, not nil")
	}
}

func TestGetPreferencesDefaults(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	out, err := uc.GetPreferences(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.DefaultAIPreferences("u1")
	if out.Preferences != want {
		t.Errorf("Preferences = %+v, want defaults %+v", out.Preferences, want)
	}
}

func TestUpdatePreferencesMergesOntoDefaults(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, &stubProvider{name: "openai", model: "gpt-4o-mini"})

	out, err := uc.UpdatePreferences(context.Background(), sc, ai.UpdatePreferencesInput{
		PreferredProvider: ptr("OpenAI"),
		WorkdayEndHour:    ptr(18),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Preferences.PreferredProvider != "OpenAI" {
		t.Errorf("PreferredProvider = %q", out.Preferences.PreferredProvider)
	}
	if out.Preferences.WorkdayStartHour != 9 || out.Preferences.WorkdayEndHour != 18 {
		t.Errorf("workday = %d-%d, want 9-18", out.Preferences.WorkdayStartHour, out.Preferences.WorkdayEndHour)
	}
	if out.Preferences.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want default kept", out.Preferences.Timezone)
	}
	if len(r.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(r.upserted))
	}
}

func TestUpdatePreferencesConfidenceThreshold(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, &stubProvider{name: "openai", model: "gpt-4o-mini"})

	out, err := uc.UpdatePreferences(context.Background(), sc, ai.UpdatePreferencesInput{
		MinConfidenceThreshold: ptr(85),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Preferences.MinConfidenceThreshold != 85 {
		t.Errorf("MinConfidenceThreshold = %d, want 85", out.Preferences.MinConfidenceThreshold)
	}
	if out.Preferences.WorkdayStartHour != 9 {
		t.Errorf("unset fields must keep defaults, got start hour %d", out.Preferences.WorkdayStartHour)
	}
}

func TestUpdatePreferencesThresholdOutOfRange(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &stubProvider{name: "openai", model: "gpt-4o-mini"})

	for _, v := range []int{-1, 101} {
		_, err := uc.UpdatePreferences(context.Background(), sc, ai.UpdatePreferencesInput{
			MinConfidenceThreshold: ptr(v),
		})
		if !errors.Is(err, ai.ErrInvalidThreshold) {
			t.Errorf("threshold %d: err = %v, want ErrInvalidThreshold", v, err)
		}
	}
}

func TestUpdatePreferencesUnknownProvider(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &stubProvider{name: "openai", model: "gpt-4o-mini"})

	_, err := uc.UpdatePreferences(context.Background(), sc, ai.UpdatePreferencesInput{
		PreferredProvider: ptr("grok"),
	})
	if !errors.Is(err, ai.ErrUnknownProvider) {
		t.Errorf("err = %v, want ErrUnknownProvider", err)
	}
}

func TestUpdatePreferencesInvalidTimezone(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	_, err := uc.UpdatePreferences(context.Background(), sc, ai.UpdatePreferencesInput{
		Timezone: ptr("Mars/Olympus_Mons"),
	})
	if !errors.Is(err, ai.ErrInvalidTimezone) {
		t.Errorf("err = %v, want ErrInvalidTimezone", err)
	}
}

func TestUpdatePreferencesInvalidWorkday(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	_, err := uc.UpdatePreferences(context.Background(), sc, ai.UpdatePreferencesInput{
		WorkdayStartHour: ptr(18),
		WorkdayEndHour:   ptr(9),
	})
	if !errors.Is(err, ai.ErrInvalidWorkday) {
		t.Errorf("err = %v, want ErrInvalidWorkday", err)
	}
}

func TestListRequestsDefaultLimit(t *testing.T) {
	r := &mockRepo{requests: []model.AIRequest{{ID: "r1"}}}
	uc := newTestUseCase(r)

	out, err := uc.ListRequests(context.Background(), sc, ai.RequestListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Limit != 20 {
		t.Errorf("Limit = %d, want default 20", out.Limit)
	}
	if out.Total != 1 {
		t.Errorf("Total = %d, want 1", out.Total)
	}
}
