package http

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/config"
	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/pkg/scope"
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

// Context resources are served under their own /context/api/v1 prefix,
// separate from the /api/v1 mount of the other domains.
func TestRegisterRoutesContextPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	eng := gin.New()

	l := &mockLogger{}
	mw := middleware.New(l, scope.NewManager("test-secret", time.Hour), &config.Config{})
	RegisterRoutes(eng.Group("/context/api/v1"), New(l, nil), mw)

	want := []string{
		"POST /context/api/v1/entries",
		"GET /context/api/v1/entries",
		"GET /context/api/v1/entries/summary",
		"GET /context/api/v1/entries/pending_processing",
		"GET /context/api/v1/entries/high_relevance",
		"GET /context/api/v1/entries/with_extracted_tasks",
		"POST /context/api/v1/entries/bulk_analyze",
		"POST /context/api/v1/entries/import_calendar",
		"GET /context/api/v1/entries/:id",
		"POST /context/api/v1/entries/:id/analyze",
		"GET /context/api/v1/insights",
		"GET /context/api/v1/insights/actionable",
		"GET /context/api/v1/insights/high_confidence",
		"GET /context/api/v1/insights/:id",
	}
	registered := map[string]bool{}
	for _, r := range eng.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %q not registered", route)
		}
	}
}
