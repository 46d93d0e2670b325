package http

import (
	"time"

	"smart-todo-backend/internal/category"
	"smart-todo-backend/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() category.CreateInput {
	return category.CreateInput{
		Name:  r.Name,
		Color: r.Color,
	}
}

type listReq struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() category.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return category.ListInput{
		Name:   r.Search,
		Limit:  limit,
		Offset: offset,
	}
}

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Name  string `json:"name"  binding:"omitempty,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() category.UpdateInput {
	return category.UpdateInput{
		ID:    r.ID,
		Name:  r.Name,
		Color: r.Color,
	}
}

// --- Response DTOs ---

type categoryResp struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	UsageFrequency int       `json:"usage_frequency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newCategoryResp(cat model.Category) categoryResp {
	return categoryResp{
		ID:             cat.ID,
		Name:           cat.Name,
		Color:          cat.Color,
		UsageFrequency: cat.UsageFrequency,
		CreatedAt:      cat.CreatedAt,
		UpdatedAt:      cat.UpdatedAt,
	}
}
