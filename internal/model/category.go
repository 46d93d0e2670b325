package model

import "time"

const DefaultCategoryColor = "#3B82F6"

// Category groups tasks. Names are unique per user; UsageFrequency counts
// how many times the category has been assigned to a task.
type Category struct {
	ID             string
	UserID         string
	Name           string
	Color          string
	UsageFrequency int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
