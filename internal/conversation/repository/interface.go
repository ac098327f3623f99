package repository

import (
	"context"

	"ai-chatbot/internal/conversation"
)

// Repository defines data access for the append-only conversation log.
type Repository interface {
	Insert(ctx context.Context, opt InsertOptions) (conversation.Conversation, error)
	List(ctx context.Context, opt ListOptions) ([]conversation.Conversation, int, error)
	Stats(ctx context.Context, opt StatsOptions) (conversation.StatsOutput, error)
}
