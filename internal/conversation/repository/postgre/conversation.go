package postgre

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ai-chatbot/internal/conversation"
	repo "ai-chatbot/internal/conversation/repository"
)

// Insert appends one exchange to the conversation log. Rows are never
// updated or deleted afterwards.
func (r *implRepository) Insert(ctx context.Context, opt repo.InsertOptions) (conversation.Conversation, error) {
	const query = `
		INSERT INTO conversations (id, user_input, predicted_intent, confidence, response_text, channel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, user_input, predicted_intent, confidence, response_text, channel, created_at`

	var cv conversation.Conversation
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserInput, opt.PredictedIntent, opt.Confidence, opt.ResponseText, opt.Channel,
	).Scan(
		&cv.ID, &cv.UserInput, &cv.PredictedIntent, &cv.Confidence, &cv.ResponseText, &cv.Channel, &cv.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return conversation.Conversation{}, repo.ErrFailedToInsert
	}
	return cv, nil
}

// List returns a page of the conversation log, newest first, plus the
// total row count matching the filters.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]conversation.Conversation, int, error) {
	where, args := r.buildListQuery(opt)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM conversations WHERE %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT id, user_input, predicted_intent, confidence, response_text, channel, created_at
		FROM conversations
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var convs []conversation.Conversation
	for rows.Next() {
		var cv conversation.Conversation
		if err := rows.Scan(&cv.ID, &cv.UserInput, &cv.PredictedIntent, &cv.Confidence, &cv.ResponseText, &cv.Channel, &cv.CreatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		convs = append(convs, cv)
	}
	return convs, total, nil
}

// Stats aggregates the conversation log in a single round trip per shape.
func (r *implRepository) Stats(ctx context.Context, opt repo.StatsOptions) (conversation.StatsOutput, error) {
	const totalsQuery = `
		SELECT COUNT(*),
		       COALESCE(AVG(confidence), 0),
		       COUNT(*) FILTER (WHERE confidence <= $1)
		FROM conversations`

	var out conversation.StatsOutput
	err := r.db.QueryRowContext(ctx, totalsQuery, opt.FallbackThreshold).Scan(
		&out.Total, &out.AvgConfidence, &out.FallbackCount,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s totals: %v", r.dsn("Stats"), err)
		return conversation.StatsOutput{}, repo.ErrFailedToGet
	}
	if out.Total > 0 {
		out.FallbackRate = float64(out.FallbackCount) / float64(out.Total)
	}

	const byIntentQuery = `
		SELECT predicted_intent, COUNT(*)
		FROM conversations
		GROUP BY predicted_intent
		ORDER BY COUNT(*) DESC, predicted_intent`

	rows, err := r.db.QueryContext(ctx, byIntentQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s by intent: %v", r.dsn("Stats"), err)
		return conversation.StatsOutput{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var ic conversation.IntentCount
		if err := rows.Scan(&ic.Intent, &ic.Count); err != nil {
			return conversation.StatsOutput{}, repo.ErrFailedToGet
		}
		out.ByIntent = append(out.ByIntent, ic)
	}
	return out, nil
}
