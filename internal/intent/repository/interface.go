package repository

import (
	"context"

	"ai-chatbot/internal/intent"
)

// Repository is the composed interface for the intent domain data store.
type Repository interface {
	IntentRepository
	PhraseRepository
}

// IntentRepository defines data access for the Intent entity.
type IntentRepository interface {
	CreateIntent(ctx context.Context, opt CreateIntentOptions) (intent.Intent, error)
	GetOneIntent(ctx context.Context, opt GetOneIntentOptions) (intent.Intent, error)
	ListIntents(ctx context.Context) ([]intent.Intent, error)
	UpdateIntent(ctx context.Context, opt UpdateIntentOptions) (intent.Intent, error)
	DeleteIntent(ctx context.Context, id string) error
}

// PhraseRepository defines data access for training phrases.
type PhraseRepository interface {
	CreatePhrase(ctx context.Context, opt CreatePhraseOptions) (intent.TrainingPhrase, error)
	ListPhrases(ctx context.Context, opt ListPhrasesOptions) ([]intent.TrainingPhrase, error)
	DeletePhrase(ctx context.Context, id string) error
}
