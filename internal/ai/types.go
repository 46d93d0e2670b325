package ai

import "smart-todo-backend/internal/model"

// --- UseCase Inputs ---

type RequestListInput struct {
	RequestType string
	Status      string
	Limit       int
	Offset      int
}

// UpdatePreferencesInput carries only the fields the caller sent. Nil fields
// keep their stored value.
type UpdatePreferencesInput struct {
	AutoAnalyzeContext     *bool
	AutoSuggestDeadline    *bool
	PreferredProvider      *string
	Timezone               *string
	WorkdayStartHour       *int
	WorkdayEndHour         *int
	MinConfidenceThreshold *int
}

// --- UseCase Outputs ---

// ProviderInfo describes one configured LLM provider.
type ProviderInfo struct {
	Name  string
	Model string
}

type ProvidersOutput struct {
	Available bool
	Providers []ProviderInfo
}

type RequestListOutput struct {
	Requests []model.AIRequest
	Total    int
	Limit    int
	Offset   int
}

type PreferencesOutput struct {
	Preferences model.UserAIPreferences
}
