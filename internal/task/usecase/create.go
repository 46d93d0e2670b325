package usecase

import (
	"context"

	"github.com/google/uuid"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// Create creates a new Task in the todo status.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.DetailOutput, error) {
	if err := uc.validateTitle(input.Title); err != nil {
		return task.DetailOutput{}, err
	}
	if input.Deadline != nil && input.Deadline.Before(uc.now()) {
		return task.DetailOutput{}, task.ErrDeadlineInPast
	}

	priority := input.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}
	if !priority.Valid() {
		return task.DetailOutput{}, task.ErrInvalidPriority
	}

	if err := uc.checkCategory(ctx, sc, input.CategoryID); err != nil {
		return task.DetailOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:            uuid.NewString(),
		UserID:        sc.UserID,
		Title:         input.Title,
		Description:   input.Description,
		Priority:      priority,
		PriorityScore: model.DefaultPriorityScore,
		Deadline:      input.Deadline,
		CategoryID:    input.CategoryID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.DetailOutput{}, err
	}

	return task.DetailOutput{Task: created}, nil
}
