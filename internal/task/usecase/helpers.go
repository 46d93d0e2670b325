package usecase

import (
	"context"
	"strings"

	catRepo "smart-todo-backend/internal/category/repository"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

func taskGetOneOptions(sc model.Scope, id string) repo.GetOneTaskOptions {
	return repo.GetOneTaskOptions{ID: id, UserID: sc.UserID}
}

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// validateTitle enforces the minimum title length after trimming.
func (uc *implUseCase) validateTitle(title string) error {
	if len(strings.TrimSpace(title)) < 3 {
		return task.ErrTitleTooShort
	}
	return nil
}

// checkCategory verifies the category exists and belongs to the caller.
func (uc *implUseCase) checkCategory(ctx context.Context, sc model.Scope, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	cat, err := uc.catRepo.GetOneCategory(ctx, catRepo.GetOneCategoryOptions{ID: categoryID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkCategory GetOneCategory: %v", err)
		return err
	}
	if cat.ID == "" {
		return task.ErrCategoryNotFound
	}
	return nil
}

// getOwnedTask fetches a task scoped to the caller or returns ErrTaskNotFound.
func (uc *implUseCase) getOwnedTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, taskGetOneOptions(sc, id))
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwnedTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if existing.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return existing, nil
}
