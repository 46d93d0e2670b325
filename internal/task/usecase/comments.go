package usecase

import (
	"context"

	"github.com/google/uuid"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	repo "smart-todo-backend/internal/task/repository"
)

// ListComments returns the comments of one of the caller's tasks.
func (uc *implUseCase) ListComments(ctx context.Context, sc model.Scope, taskID string) ([]model.TaskComment, error) {
	if _, err := uc.getOwnedTask(ctx, sc, taskID); err != nil {
		return nil, err
	}

	comments, err := uc.repo.ListComments(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListComments ListComments: %v", err)
		return nil, err
	}
	return comments, nil
}

// AddComment attaches a comment to one of the caller's tasks.
func (uc *implUseCase) AddComment(ctx context.Context, sc model.Scope, input task.AddCommentInput) (model.TaskComment, error) {
	if _, err := uc.getOwnedTask(ctx, sc, input.TaskID); err != nil {
		return model.TaskComment{}, err
	}

	comment, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		ID:      uuid.NewString(),
		TaskID:  input.TaskID,
		UserID:  sc.UserID,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment CreateComment: %v", err)
		return model.TaskComment{}, err
	}
	return comment, nil
}
