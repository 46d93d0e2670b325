package usecase

import (
	"context"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	existing, err := uc.getOwnedTask(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: existing}, nil
}

// Update modifies an existing Task. Zero-value fields keep their current value.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.DetailOutput, error) {
	existing, err := uc.getOwnedTask(ctx, sc, input.ID)
	if err != nil {
		return task.DetailOutput{}, err
	}

	title := uc.coalesce(input.Title, existing.Title)
	if err := uc.validateTitle(title); err != nil {
		return task.DetailOutput{}, err
	}

	status := existing.Status
	if input.Status != "" {
		if !input.Status.Valid() {
			return task.DetailOutput{}, task.ErrInvalidStatus
		}
		status = input.Status
	}

	priority := existing.Priority
	if input.Priority != "" {
		if !input.Priority.Valid() {
			return task.DetailOutput{}, task.ErrInvalidPriority
		}
		priority = input.Priority
	}

	deadline := existing.Deadline
	if input.ClearDeadline {
		deadline = nil
	} else if input.Deadline != nil {
		if input.Deadline.Before(uc.now()) {
			return task.DetailOutput{}, task.ErrDeadlineInPast
		}
		deadline = input.Deadline
	}

	description := existing.Description
	if input.Description != nil {
		description = *input.Description
	}

	categoryID := existing.CategoryID
	if input.CategoryID != "" {
		if err := uc.checkCategory(ctx, sc, input.CategoryID); err != nil {
			return task.DetailOutput{}, err
		}
		categoryID = input.CategoryID
	}

	completedAt := uc.completionTime(existing, status)

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:            input.ID,
		UserID:        sc.UserID,
		Title:         title,
		Description:   description,
		Status:        status,
		Priority:      priority,
		PriorityScore: existing.PriorityScore,
		Deadline:      deadline,
		CategoryID:    categoryID,
		CompletedAt:   completedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: updated}, nil
}

// completionTime derives completed_at from a status transition.
func (uc *implUseCase) completionTime(existing model.Task, next model.TaskStatus) *time.Time {
	if next != model.TaskStatusCompleted {
		return nil
	}
	if existing.CompletedAt != nil {
		return existing.CompletedAt
	}
	now := uc.now()
	return &now
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwnedTask(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
