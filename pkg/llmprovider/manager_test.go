package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Mock logger for testing
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

// mockProvider is a scriptable Provider for manager tests
type mockProvider struct {
	name     string
	calls    int
	failures int // fail this many calls before succeeding
	err      error
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	if m.calls <= m.failures {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("mock failure")
	}
	return &Response{
		Text:         "ok from " + m.name,
		ProviderName: m.name,
		ModelName:    "mock-model",
		Usage:        &Usage{TotalTokens: 10},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "mock-model" }

func TestManagerGenerateContent(t *testing.T) {
	t.Run("No Providers", func(t *testing.T) {
		m := NewManager(nil, &Config{}, &mockLogger{})
		_, err := m.GenerateContent(context.Background(), &Request{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		p1 := &mockProvider{name: "openai"}
		p2 := &mockProvider{name: "gemini"}
		m := NewManager([]Provider{p1, p2}, &Config{RetryAttempts: 1, FallbackEnabled: true}, &mockLogger{})

		resp, err := m.GenerateContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "openai" {
			t.Errorf("expected openai, got %s", resp.ProviderName)
		}
		if p2.calls != 0 {
			t.Errorf("fallback provider should not be called, got %d calls", p2.calls)
		}
	})

	t.Run("Fallback On Failure", func(t *testing.T) {
		p1 := &mockProvider{name: "openai", failures: 100}
		p2 := &mockProvider{name: "gemini"}
		m := NewManager([]Provider{p1, p2}, &Config{RetryAttempts: 2, FallbackEnabled: true}, &mockLogger{})

		resp, err := m.GenerateContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "gemini" {
			t.Errorf("expected gemini after fallback, got %s", resp.ProviderName)
		}
		if p1.calls != 2 {
			t.Errorf("expected 2 retry attempts on first provider, got %d", p1.calls)
		}
	})

	t.Run("Fallback Disabled", func(t *testing.T) {
		p1 := &mockProvider{name: "openai", failures: 100}
		p2 := &mockProvider{name: "gemini"}
		m := NewManager([]Provider{p1, p2}, &Config{RetryAttempts: 1, FallbackEnabled: false}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), &Request{})
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if p2.calls != 0 {
			t.Errorf("second provider should not run when fallback disabled")
		}
	})

	t.Run("All Providers Fail", func(t *testing.T) {
		p1 := &mockProvider{name: "openai", failures: 100}
		p2 := &mockProvider{name: "gemini", failures: 100}
		m := NewManager([]Provider{p1, p2}, &Config{RetryAttempts: 1, FallbackEnabled: true}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), &Request{})
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("Retry Then Succeed", func(t *testing.T) {
		p1 := &mockProvider{name: "openai", failures: 1}
		m := NewManager([]Provider{p1}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond, FallbackEnabled: true}, &mockLogger{})

		resp, err := m.GenerateContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "openai" {
			t.Errorf("expected openai, got %s", resp.ProviderName)
		}
		if p1.calls != 2 {
			t.Errorf("expected 2 calls (1 failure + 1 success), got %d", p1.calls)
		}
	})

	t.Run("Global Timeout", func(t *testing.T) {
		p1 := &mockProvider{name: "openai", failures: 100}
		m := NewManager([]Provider{p1}, &Config{
			RetryAttempts:   5,
			RetryDelay:      50 * time.Millisecond,
			FallbackEnabled: true,
			MaxTotalTimeout: 10 * time.Millisecond,
		}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), &Request{})
		if err == nil {
			t.Fatal("expected timeout error")
		}
	})
}

func TestRateLimitedProvider(t *testing.T) {
	inner := &mockProvider{name: "openai"}
	p := newRateLimitedProvider(inner, 60) // 1 req/s, burst 6

	var rateLimited bool
	for i := 0; i < 20; i++ {
		_, err := p.GenerateContent(context.Background(), &Request{})
		if errors.Is(err, ErrProviderRateLimited) {
			rateLimited = true
			break
		}
	}
	if !rateLimited {
		t.Error("expected rate limit to trip within 20 rapid requests")
	}
}
