package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ai-chatbot/internal/intent"
	repo "ai-chatbot/internal/intent/repository"
)

// CreateIntent inserts a new Intent row and returns the created entity.
func (r *implRepository) CreateIntent(ctx context.Context, opt repo.CreateIntentOptions) (intent.Intent, error) {
	const query = `
		INSERT INTO intents (id, name, responses, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, responses, created_at, updated_at`

	var it intent.Intent
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Name, pq.Array(opt.Responses)).Scan(
		&it.ID, &it.Name, pq.Array(&it.Responses), &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIntent"), err)
		return intent.Intent{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneIntent retrieves a single Intent by the provided filters (AND condition).
// Returns zero-value Intent (ID == "") when not found, do NOT return error for not-found.
func (r *implRepository) GetOneIntent(ctx context.Context, opt repo.GetOneIntentOptions) (intent.Intent, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, name, responses, created_at, updated_at FROM intents WHERE %s LIMIT 1`, mods)

	var it intent.Intent
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&it.ID, &it.Name, pq.Array(&it.Responses), &it.CreatedAt, &it.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return intent.Intent{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneIntent"), err)
		return intent.Intent{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListIntents returns all intents ordered by name.
func (r *implRepository) ListIntents(ctx context.Context) ([]intent.Intent, error) {
	const query = `SELECT id, name, responses, created_at, updated_at FROM intents ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIntents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var intents []intent.Intent
	for rows.Next() {
		var it intent.Intent
		if err := rows.Scan(&it.ID, &it.Name, pq.Array(&it.Responses), &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		intents = append(intents, it)
	}
	return intents, nil
}

// UpdateIntent updates an Intent by ID and returns the updated entity.
func (r *implRepository) UpdateIntent(ctx context.Context, opt repo.UpdateIntentOptions) (intent.Intent, error) {
	const query = `
		UPDATE intents
		SET name = $1, responses = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, name, responses, created_at, updated_at`

	var it intent.Intent
	err := r.db.QueryRowContext(ctx, query, opt.Name, pq.Array(opt.Responses), time.Now(), opt.ID).Scan(
		&it.ID, &it.Name, pq.Array(&it.Responses), &it.CreatedAt, &it.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return intent.Intent{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateIntent"), err)
		return intent.Intent{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteIntent removes an Intent by ID. Training phrases cascade.
func (r *implRepository) DeleteIntent(ctx context.Context, id string) error {
	const query = `DELETE FROM intents WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteIntent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
