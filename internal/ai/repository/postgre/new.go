package postgre

import (
	"database/sql"
	"fmt"

	"smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the AI domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("ai/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("ai/repository/postgre.%s", method)
}
