package repository

// CreateCategoryOptions holds parameters for inserting a new Category.
type CreateCategoryOptions struct {
	ID     string
	UserID string
	Name   string
	Color  string
}

// GetOneCategoryOptions holds filter parameters for fetching a single Category.
// All non-empty fields are applied as AND conditions.
type GetOneCategoryOptions struct {
	ID     string
	UserID string
	Name   string
}

// ListCategoriesOptions holds filter and pagination parameters for listing Categories.
type ListCategoriesOptions struct {
	UserID  string
	Name    string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateCategoryOptions holds parameters for updating an existing Category.
type UpdateCategoryOptions struct {
	ID     string
	UserID string
	Name   string
	Color  string
}
