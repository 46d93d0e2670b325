package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "smart-todo-backend/internal/category/repository"
	"smart-todo-backend/internal/model"
)

const categoryColumns = `id, user_id, name, color, usage_frequency, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (model.Category, error) {
	var cat model.Category
	err := row.Scan(
		&cat.ID, &cat.UserID, &cat.Name, &cat.Color, &cat.UsageFrequency, &cat.CreatedAt, &cat.UpdatedAt,
	)
	return cat, err
}

// CreateCategory inserts a new Category row and returns the created entity.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	query := fmt.Sprintf(`
		INSERT INTO categories (id, user_id, name, color, usage_frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW(), NOW())
		RETURNING %s`, categoryColumns)

	cat, err := scanCategory(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, opt.Name, opt.Color))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return cat, nil
}

// GetOneCategory retrieves a single Category by the provided filters (AND condition).
// Returns zero-value Category (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE %s LIMIT 1`, categoryColumns, mods)

	cat, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return cat, nil
}

// ListCategories returns a paginated list of Categories and the total count.
func (r *implRepository) ListCategories(ctx context.Context, opt repo.ListCategoriesOptions) ([]model.Category, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM categories WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListCategories"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM categories %s`, categoryColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		cats = append(cats, cat)
	}
	return cats, total, nil
}

// UpdateCategory updates a Category by ID and returns the updated entity.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	query := fmt.Sprintf(`
		UPDATE categories
		SET name = $1, color = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING %s`, categoryColumns)

	cat, err := scanCategory(r.db.QueryRowContext(ctx, query, opt.Name, opt.Color, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repo.ErrFailedToUpdate
	}
	return cat, nil
}

// DeleteCategory removes a Category by ID scoped to its owner.
func (r *implRepository) DeleteCategory(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountTasks counts tasks currently assigned to the category.
func (r *implRepository) CountTasks(ctx context.Context, userID, id string) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE category_id = $1 AND user_id = $2`
	var n int
	if err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}
