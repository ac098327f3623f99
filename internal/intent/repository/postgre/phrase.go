package postgre

import (
	"context"

	"github.com/google/uuid"

	"ai-chatbot/internal/intent"
	repo "ai-chatbot/internal/intent/repository"
)

// CreatePhrase inserts a training phrase for an intent.
func (r *implRepository) CreatePhrase(ctx context.Context, opt repo.CreatePhraseOptions) (intent.TrainingPhrase, error) {
	const query = `
		INSERT INTO training_phrases (id, intent_id, phrase, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, intent_id, phrase, created_at`

	var p intent.TrainingPhrase
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.IntentID, opt.Phrase).Scan(
		&p.ID, &p.IntentID, &p.Phrase, &p.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePhrase"), err)
		return intent.TrainingPhrase{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// ListPhrases returns training phrases joined with their intent name,
// ordered by (intent name, created_at) so corpus loads are stable between
// training rounds.
func (r *implRepository) ListPhrases(ctx context.Context, opt repo.ListPhrasesOptions) ([]intent.TrainingPhrase, error) {
	query := `
		SELECT p.id, p.intent_id, i.name, p.phrase, p.created_at
		FROM training_phrases p
		JOIN intents i ON i.id = p.intent_id`
	var args []any
	if opt.IntentID != "" {
		query += ` WHERE p.intent_id = $1`
		args = append(args, opt.IntentID)
	}
	query += ` ORDER BY i.name, p.created_at, p.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPhrases"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var phrases []intent.TrainingPhrase
	for rows.Next() {
		var p intent.TrainingPhrase
		if err := rows.Scan(&p.ID, &p.IntentID, &p.IntentName, &p.Phrase, &p.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		phrases = append(phrases, p)
	}
	return phrases, nil
}

// DeletePhrase removes a training phrase by ID.
// Returns ErrNotFound when no row matched.
func (r *implRepository) DeletePhrase(ctx context.Context, id string) error {
	const query = `DELETE FROM training_phrases WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePhrase"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
