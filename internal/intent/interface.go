package intent

import (
	"context"

	"ai-chatbot/internal/classifier"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Intent CRUD
	Create(ctx context.Context, input CreateIntentInput) (CreateIntentOutput, error)
	List(ctx context.Context) (ListIntentsOutput, error)
	Detail(ctx context.Context, id string) (DetailIntentOutput, error)
	Update(ctx context.Context, input UpdateIntentInput) (UpdateIntentOutput, error)
	Delete(ctx context.Context, id string) error

	// Training phrases
	AddPhrase(ctx context.Context, input AddPhraseInput) (AddPhraseOutput, error)
	DeletePhrase(ctx context.Context, id string) error

	// Consumed by the chat domain for training and response lookup
	LoadCorpus(ctx context.Context) ([]classifier.TrainingExample, error)
	ResponseTable(ctx context.Context) (map[string][]string, error)
}
