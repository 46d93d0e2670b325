package http

import (
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/model"
)

// --- Request DTOs ---

type requestListReq struct {
	RequestType string `form:"request_type" binding:"omitempty,oneof=task_analysis prioritization context_analysis deadline_suggestion categorization"`
	Status      string `form:"status"       binding:"omitempty,oneof=pending completed failed"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (r requestListReq) validate() error { return nil }

func (r requestListReq) toInput() ai.RequestListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return ai.RequestListInput{
		RequestType: r.RequestType,
		Status:      r.Status,
		Limit:       limit,
		Offset:      r.Offset,
	}
}

type updatePreferencesReq struct {
	AutoAnalyzeContext     *bool   `json:"auto_analyze_context"`
	AutoSuggestDeadline    *bool   `json:"auto_suggest_deadline"`
	PreferredProvider      *string `json:"preferred_provider"`
	Timezone               *string `json:"timezone"`
	WorkdayStartHour       *int    `json:"workday_start_hour" binding:"omitempty,min=0,max=23"`
	WorkdayEndHour         *int    `json:"workday_end_hour"   binding:"omitempty,min=1,max=24"`
	MinConfidenceThreshold *int    `json:"minimum_confidence_threshold" binding:"omitempty,min=0,max=100"`
}

func (r updatePreferencesReq) validate() error { return nil }

func (r updatePreferencesReq) toInput() ai.UpdatePreferencesInput {
	return ai.UpdatePreferencesInput{
		AutoAnalyzeContext:     r.AutoAnalyzeContext,
		AutoSuggestDeadline:    r.AutoSuggestDeadline,
		PreferredProvider:      r.PreferredProvider,
		Timezone:               r.Timezone,
		WorkdayStartHour:       r.WorkdayStartHour,
		WorkdayEndHour:         r.WorkdayEndHour,
		MinConfidenceThreshold: r.MinConfidenceThreshold,
	}
}

// --- Response DTOs ---

type providerResp struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

type providersResp struct {
	Available bool           `json:"available"`
	Providers []providerResp `json:"providers"`
}

func newProvidersResp(out ai.ProvidersOutput) providersResp {
	providers := make([]providerResp, len(out.Providers))
	for i, p := range out.Providers {
		providers[i] = providerResp{Name: p.Name, Model: p.Model}
	}
	return providersResp{Available: out.Available, Providers: providers}
}

type requestResp struct {
	ID           string    `json:"id"`
	RequestType  string    `json:"request_type"`
	Status       string    `json:"status"`
	Provider     string    `json:"provider,omitempty"`
	Model        string    `json:"model,omitempty"`
	PromptTokens int       `json:"prompt_tokens"`
	OutputTokens int       `json:"output_tokens"`
	DurationMS   int64     `json:"duration_ms"`
	ErrorDetail  string    `json:"error_detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newRequestResps(requests []model.AIRequest) []requestResp {
	resps := make([]requestResp, len(requests))
	for i, r := range requests {
		resps[i] = requestResp{
			ID:           r.ID,
			RequestType:  string(r.RequestType),
			Status:       string(r.Status),
			Provider:     r.ProviderName,
			Model:        r.ModelName,
			PromptTokens: r.PromptTokens,
			OutputTokens: r.OutputTokens,
			DurationMS:   r.DurationMS,
			ErrorDetail:  r.ErrorDetail,
			CreatedAt:    r.CreatedAt,
		}
	}
	return resps
}

type preferencesResp struct {
	AutoAnalyzeContext     bool   `json:"auto_analyze_context"`
	AutoSuggestDeadline    bool   `json:"auto_suggest_deadline"`
	PreferredProvider      string `json:"preferred_provider,omitempty"`
	Timezone               string `json:"timezone"`
	WorkdayStartHour       int    `json:"workday_start_hour"`
	WorkdayEndHour         int    `json:"workday_end_hour"`
	MinConfidenceThreshold int    `json:"minimum_confidence_threshold"`
}

func newPreferencesResp(p model.UserAIPreferences) preferencesResp {
	return preferencesResp{
		AutoAnalyzeContext:     p.AutoAnalyzeContext,
		AutoSuggestDeadline:    p.AutoSuggestDeadline,
		PreferredProvider:      p.PreferredProvider,
		Timezone:               p.Timezone,
		WorkdayStartHour:       p.WorkdayStartHour,
		WorkdayEndHour:         p.WorkdayEndHour,
		MinConfidenceThreshold: p.MinConfidenceThreshold,
	}
}
