package usecase

import (
	"context"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// List returns a paginated list of the user's Tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:         sc.UserID,
		Status:         input.Status,
		Priority:       input.Priority,
		CategoryID:     input.CategoryID,
		Search:         input.Search,
		OverdueOnly:    input.OverdueOnly,
		MinScore:       input.MinScore,
		DeadlineBefore: input.DeadlineBefore,
		DeadlineAfter:  input.DeadlineAfter,
		Now:            uc.now(),
		Limit:          input.Limit,
		Offset:         input.Offset,
		OrderBy:        input.OrderBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
