package usecase

import (
	"context"

	"github.com/google/uuid"

	"smart-todo-backend/internal/category"
	repo "smart-todo-backend/internal/category/repository"
	"smart-todo-backend/internal/model"
)

// Create creates a new Category after checking for name uniqueness per user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input category.CreateInput) (category.DetailOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
		return category.DetailOutput{}, err
	}
	if existing.ID != "" {
		return category.DetailOutput{}, category.ErrDuplicateName
	}

	color := input.Color
	if color == "" {
		color = model.DefaultCategoryColor
	}

	cat, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		ID:     uuid.NewString(),
		UserID: sc.UserID,
		Name:   input.Name,
		Color:  color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		return category.DetailOutput{}, err
	}

	return category.DetailOutput{Category: cat}, nil
}

// List returns a paginated list of the user's Categories.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input category.ListInput) (category.ListOutput, error) {
	cats, total, err := uc.repo.ListCategories(ctx, repo.ListCategoriesOptions{
		UserID:  sc.UserID,
		Name:    input.Name,
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListOutput{}, err
	}

	return category.ListOutput{
		Categories: cats,
		Total:      total,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}, nil
}

// Detail retrieves a single Category by ID. Returns ErrCategoryNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (category.DetailOutput, error) {
	cat, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCategory: %v", err)
		return category.DetailOutput{}, err
	}
	if cat.ID == "" {
		return category.DetailOutput{}, category.ErrCategoryNotFound
	}
	return category.DetailOutput{Category: cat}, nil
}

// Update modifies an existing Category. Renames are checked for uniqueness.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input category.UpdateInput) (category.DetailOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
		return category.DetailOutput{}, err
	}
	if existing.ID == "" {
		return category.DetailOutput{}, category.ErrCategoryNotFound
	}

	if input.Name != "" && input.Name != existing.Name {
		dup, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, Name: input.Name})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCategory dup: %v", err)
			return category.DetailOutput{}, err
		}
		if dup.ID != "" && dup.ID != existing.ID {
			return category.DetailOutput{}, category.ErrDuplicateName
		}
	}

	cat, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:     input.ID,
		UserID: sc.UserID,
		Name:   uc.coalesce(input.Name, existing.Name),
		Color:  uc.coalesce(input.Color, existing.Color),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return category.DetailOutput{}, err
	}
	return category.DetailOutput{Category: cat}, nil
}

// Delete removes a Category. Categories with tasks still assigned are protected.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneCategory: %v", err)
		return err
	}
	if existing.ID == "" {
		return category.ErrCategoryNotFound
	}

	inUse, err := uc.repo.CountTasks(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete CountTasks: %v", err)
		return err
	}
	if inUse > 0 {
		return category.ErrCategoryInUse
	}

	if err := uc.repo.DeleteCategory(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCategory: %v", err)
		return err
	}
	return nil
}
