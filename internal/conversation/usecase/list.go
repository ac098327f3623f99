package usecase

import (
	"context"

	"ai-chatbot/internal/conversation"
	repo "ai-chatbot/internal/conversation/repository"
)

// List returns a page of the conversation log, newest first.
func (uc *implUseCase) List(ctx context.Context, input conversation.ListInput) (conversation.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	convs, total, err := uc.repo.List(ctx, repo.ListOptions{
		Intent:  input.Intent,
		Channel: input.Channel,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return conversation.ListOutput{}, err
	}

	return conversation.ListOutput{
		Conversations: convs,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// Stats aggregates the whole log: volume, mean confidence, per-intent
// counts and the share of exchanges that fell back.
func (uc *implUseCase) Stats(ctx context.Context) (conversation.StatsOutput, error) {
	out, err := uc.repo.Stats(ctx, repo.StatsOptions{FallbackThreshold: uc.fallbackThreshold})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats: %v", err)
		return conversation.StatsOutput{}, err
	}
	return out, nil
}
