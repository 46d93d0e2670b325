package usecase

import (
	"context"
	"strings"
	"time"

	"smart-todo-backend/internal/ai"
	repo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/model"
)

func (uc *implUseCase) Providers(ctx context.Context) (ai.ProvidersOutput, error) {
	out := ai.ProvidersOutput{
		Available: uc.providers.HasProviders(),
		Providers: []ai.ProviderInfo{},
	}
	for _, p := range uc.providers.Providers() {
		out.Providers = append(out.Providers, ai.ProviderInfo{Name: p.Name(), Model: p.Model()})
	}
	return out, nil
}

func (uc *implUseCase) ListRequests(ctx context.Context, sc model.Scope, input ai.RequestListInput) (ai.RequestListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	requests, total, err := uc.repo.ListAIRequests(ctx, repo.ListAIRequestsOptions{
		UserID:      sc.UserID,
		RequestType: input.RequestType,
		Status:      input.Status,
		Limit:       limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRequests ListAIRequests: %v", err)
		return ai.RequestListOutput{}, err
	}
	return ai.RequestListOutput{Requests: requests, Total: total, Limit: limit, Offset: input.Offset}, nil
}

// currentPreferences returns the stored preferences or the defaults when the
// user never saved any.
func (uc *implUseCase) currentPreferences(ctx context.Context, sc model.Scope) (model.UserAIPreferences, error) {
	prefs, err := uc.repo.GetPreferences(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.currentPreferences GetPreferences: %v", err)
		return model.UserAIPreferences{}, err
	}
	if prefs.UserID == "" {
		return model.DefaultAIPreferences(sc.UserID), nil
	}
	return prefs, nil
}

func (uc *implUseCase) GetPreferences(ctx context.Context, sc model.Scope) (ai.PreferencesOutput, error) {
	prefs, err := uc.currentPreferences(ctx, sc)
	if err != nil {
		return ai.PreferencesOutput{}, err
	}
	return ai.PreferencesOutput{Preferences: prefs}, nil
}

func (uc *implUseCase) UpdatePreferences(ctx context.Context, sc model.Scope, input ai.UpdatePreferencesInput) (ai.PreferencesOutput, error) {
	prefs, err := uc.currentPreferences(ctx, sc)
	if err != nil {
		return ai.PreferencesOutput{}, err
	}

	if input.AutoAnalyzeContext != nil {
		prefs.AutoAnalyzeContext = *input.AutoAnalyzeContext
	}
	if input.AutoSuggestDeadline != nil {
		prefs.AutoSuggestDeadline = *input.AutoSuggestDeadline
	}
	if input.PreferredProvider != nil {
		if err := uc.checkProvider(*input.PreferredProvider); err != nil {
			return ai.PreferencesOutput{}, err
		}
		prefs.PreferredProvider = *input.PreferredProvider
	}
	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			return ai.PreferencesOutput{}, ai.ErrInvalidTimezone
		}
		prefs.Timezone = *input.Timezone
	}
	if input.WorkdayStartHour != nil {
		prefs.WorkdayStartHour = *input.WorkdayStartHour
	}
	if input.WorkdayEndHour != nil {
		prefs.WorkdayEndHour = *input.WorkdayEndHour
	}
	if prefs.WorkdayStartHour >= prefs.WorkdayEndHour {
		return ai.PreferencesOutput{}, ai.ErrInvalidWorkday
	}
	if input.MinConfidenceThreshold != nil {
		if *input.MinConfidenceThreshold < 0 || *input.MinConfidenceThreshold > 100 {
			return ai.PreferencesOutput{}, ai.ErrInvalidThreshold
		}
		prefs.MinConfidenceThreshold = *input.MinConfidenceThreshold
	}

	saved, err := uc.repo.UpsertPreferences(ctx, repo.UpsertPreferencesOptions{
		UserID:                 sc.UserID,
		AutoAnalyzeContext:     prefs.AutoAnalyzeContext,
		AutoSuggestDeadline:    prefs.AutoSuggestDeadline,
		PreferredProvider:      prefs.PreferredProvider,
		Timezone:               prefs.Timezone,
		WorkdayStartHour:       prefs.WorkdayStartHour,
		WorkdayEndHour:         prefs.WorkdayEndHour,
		MinConfidenceThreshold: prefs.MinConfidenceThreshold,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePreferences UpsertPreferences: %v", err)
		return ai.PreferencesOutput{}, err
	}
	return ai.PreferencesOutput{Preferences: saved}, nil
}

// checkProvider accepts an empty name (no preference) or a configured one.
func (uc *implUseCase) checkProvider(name string) error {
	if name == "" {
		return nil
	}
	for _, p := range uc.providers.Providers() {
		if strings.EqualFold(p.Name(), name) {
			return nil
		}
	}
	return ai.ErrUnknownProvider
}
