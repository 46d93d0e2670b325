package postgre

import (
	"database/sql"
	"fmt"

	"smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the context domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("contextentry/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("contextentry/repository/postgre.%s", method)
}
