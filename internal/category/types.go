package category

import "smart-todo-backend/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name  string
	Color string
}

type ListInput struct {
	Name    string
	Limit   int
	Offset  int
	OrderBy string
}

type UpdateInput struct {
	ID    string
	Name  string
	Color string
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Category model.Category
}

type ListOutput struct {
	Categories []model.Category
	Total      int
	Limit      int
	Offset     int
}
