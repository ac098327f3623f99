package postgre

import (
	"database/sql"
	"fmt"

	"ai-chatbot/internal/conversation/repository"
	"ai-chatbot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a Postgres-backed conversation log repository.
func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

var _ repository.Repository = (*implRepository)(nil)

// dsn builds a log prefix for repository methods.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation.repository.postgre.%s", method)
}
