package postgre

import (
	"database/sql"
	"fmt"

	"ai-chatbot/internal/intent/repository"
	"ai-chatbot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a Postgres-backed intent repository.
func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

var _ repository.Repository = (*implRepository)(nil)

// dsn builds a log prefix for repository methods.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("intent.repository.postgre.%s", method)
}
