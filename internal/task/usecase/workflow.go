package usecase

import (
	"context"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// MarkCompleted transitions a task to completed and stamps completed_at.
func (uc *implUseCase) MarkCompleted(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	existing, err := uc.getOwnedTask(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	if existing.Status == model.TaskStatusCompleted {
		return task.DetailOutput{}, task.ErrAlreadyCompleted
	}

	now := uc.now()
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:            id,
		UserID:        sc.UserID,
		Title:         existing.Title,
		Description:   existing.Description,
		Status:        model.TaskStatusCompleted,
		Priority:      existing.Priority,
		PriorityScore: existing.PriorityScore,
		Deadline:      existing.Deadline,
		CategoryID:    existing.CategoryID,
		CompletedAt:   &now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkCompleted UpdateTask: %v", err)
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: updated}, nil
}

// Overdue lists open tasks whose deadline has passed.
func (uc *implUseCase) Overdue(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:      sc.UserID,
		OverdueOnly: true,
		Now:         uc.now(),
		OrderBy:     "t.deadline ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overdue ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks, Total: total}, nil
}

// HighPriority lists open tasks at or above the high priority threshold.
func (uc *implUseCase) HighPriority(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		OpenOnly: true,
		MinScore: model.HighPriorityThreshold,
		Now:      uc.now(),
		OrderBy:  "t.priority_score DESC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.HighPriority ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks, Total: total}, nil
}

// ByStatus groups all of the user's tasks by status.
func (uc *implUseCase) ByStatus(ctx context.Context, sc model.Scope) (task.ByStatusOutput, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		Now:     uc.now(),
		OrderBy: "t.priority_score DESC, t.created_at DESC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ByStatus ListTasks: %v", err)
		return task.ByStatusOutput{}, err
	}

	groups := map[model.TaskStatus][]model.Task{
		model.TaskStatusTodo:       {},
		model.TaskStatusInProgress: {},
		model.TaskStatusCompleted:  {},
		model.TaskStatusCancelled:  {},
	}
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return task.ByStatusOutput{Groups: groups}, nil
}

// DashboardStats computes the aggregate counters for the dashboard.
func (uc *implUseCase) DashboardStats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	row, err := uc.repo.StatsCounts(ctx, sc.UserID, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "uc.DashboardStats StatsCounts: %v", err)
		return task.StatsOutput{}, err
	}

	stats := task.Stats{
		Total:        row.Total,
		Todo:         row.Todo,
		InProgress:   row.InProgress,
		Completed:    row.Completed,
		Cancelled:    row.Cancelled,
		Overdue:      row.Overdue,
		DueToday:     row.DueToday,
		DueThisWeek:  row.DueThisWeek,
		HighPriority: row.HighPriority,
		ByPriority: map[model.TaskPriority]int{
			model.TaskPriorityLow:    row.PriorityLow,
			model.TaskPriorityMedium: row.PriorityMedium,
			model.TaskPriorityHigh:   row.PriorityHigh,
			model.TaskPriorityUrgent: row.PriorityUrgent,
		},
		AvgPriorityScore: row.AvgPriorityScore,
	}
	if row.Total > 0 {
		stats.CompletionRate = float64(row.Completed) / float64(row.Total) * 100
	}
	return task.StatsOutput{Stats: stats}, nil
}

// BulkUpdate applies the same field changes to a set of tasks.
func (uc *implUseCase) BulkUpdate(ctx context.Context, sc model.Scope, input task.BulkUpdateInput) (task.BulkUpdateOutput, error) {
	if len(input.TaskIDs) == 0 {
		return task.BulkUpdateOutput{}, task.ErrEmptyBulkUpdate
	}
	if input.Status == "" && input.Priority == "" && input.CategoryID == "" {
		return task.BulkUpdateOutput{}, task.ErrEmptyBulkUpdate
	}
	if input.Status != "" && !input.Status.Valid() {
		return task.BulkUpdateOutput{}, task.ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return task.BulkUpdateOutput{}, task.ErrInvalidPriority
	}
	if err := uc.checkCategory(ctx, sc, input.CategoryID); err != nil {
		return task.BulkUpdateOutput{}, err
	}

	// All-or-nothing: reject the whole batch when any id is missing or foreign.
	owned, err := uc.repo.CountOwnedTasks(ctx, sc.UserID, input.TaskIDs)
	if err != nil {
		uc.l.Errorf(ctx, "uc.BulkUpdate CountOwnedTasks: %v", err)
		return task.BulkUpdateOutput{}, err
	}
	if owned != len(input.TaskIDs) {
		return task.BulkUpdateOutput{}, task.ErrTasksNotOwned
	}

	opt := repo.BulkUpdateTasksOptions{
		UserID:     sc.UserID,
		TaskIDs:    input.TaskIDs,
		Status:     input.Status,
		Priority:   input.Priority,
		CategoryID: input.CategoryID,
	}
	if input.Status == model.TaskStatusCompleted {
		now := uc.now()
		opt.CompletedAt = &now
	}

	updated, err := uc.repo.BulkUpdateTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.BulkUpdate BulkUpdateTasks: %v", err)
		return task.BulkUpdateOutput{}, err
	}
	return task.BulkUpdateOutput{Updated: updated}, nil
}
