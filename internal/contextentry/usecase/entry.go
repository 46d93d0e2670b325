package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"smart-todo-backend/internal/contextentry"
	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/model"
)

func (uc *implUseCase) validateInput(content string, source model.ContextSource) error {
	if strings.TrimSpace(content) == "" {
		return contextentry.ErrEmptyContent
	}
	if !source.Valid() {
		return contextentry.ErrInvalidSource
	}
	return nil
}

// getOwnedEntry fetches an entry scoped to the caller or returns ErrEntryNotFound.
func (uc *implUseCase) getOwnedEntry(ctx context.Context, sc model.Scope, id string) (model.ContextEntry, error) {
	entry, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwnedEntry GetOneEntry: %v", err)
		return model.ContextEntry{}, err
	}
	if entry.ID == "" {
		return model.ContextEntry{}, contextentry.ErrEntryNotFound
	}
	return entry, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input contextentry.CreateInput) (contextentry.DetailOutput, error) {
	source := input.SourceType
	if source == "" {
		source = model.ContextSourceManual
	}
	if err := uc.validateInput(input.Content, source); err != nil {
		return contextentry.DetailOutput{}, err
	}

	entry, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		Content:    input.Content,
		SourceType: source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEntry: %v", err)
		return contextentry.DetailOutput{}, err
	}
	return contextentry.DetailOutput{Entry: entry}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input contextentry.ListInput) (contextentry.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, total, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		UserID:     sc.UserID,
		SourceType: input.SourceType,
		Status:     input.Status,
		Search:     input.Search,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEntries: %v", err)
		return contextentry.ListOutput{}, err
	}
	return contextentry.ListOutput{Entries: entries, Total: total, Limit: limit, Offset: input.Offset}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (contextentry.DetailOutput, error) {
	entry, err := uc.getOwnedEntry(ctx, sc, id)
	if err != nil {
		return contextentry.DetailOutput{}, err
	}

	insights, err := uc.repo.ListEntryInsights(ctx, entry.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListEntryInsights: %v", err)
		return contextentry.DetailOutput{}, err
	}
	return contextentry.DetailOutput{Entry: entry, Insights: insights}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input contextentry.UpdateInput) (contextentry.DetailOutput, error) {
	existing, err := uc.getOwnedEntry(ctx, sc, input.ID)
	if err != nil {
		return contextentry.DetailOutput{}, err
	}

	content := input.Content
	if content == "" {
		content = existing.Content
	}
	source := input.SourceType
	if source == "" {
		source = existing.SourceType
	}
	if err := uc.validateInput(content, source); err != nil {
		return contextentry.DetailOutput{}, err
	}

	entry, err := uc.repo.UpdateEntryContent(ctx, repo.UpdateEntryContentOptions{
		ID:         existing.ID,
		UserID:     sc.UserID,
		Content:    content,
		SourceType: source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEntryContent: %v", err)
		return contextentry.DetailOutput{}, err
	}
	return contextentry.DetailOutput{Entry: entry}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwnedEntry(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteEntry(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEntry: %v", err)
		return err
	}
	return nil
}
