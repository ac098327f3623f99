package usecase

import (
	"context"
	"fmt"

	"ai-chatbot/internal/classifier"
	"ai-chatbot/internal/intent"
	repo "ai-chatbot/internal/intent/repository"
)

// LoadCorpus returns the full labeled training corpus, ordered by
// (intent name, created_at). A repository failure is surfaced as
// ErrStoreUnavailable; the caller must not train on a partial result.
func (uc *implUseCase) LoadCorpus(ctx context.Context) ([]classifier.TrainingExample, error) {
	phrases, err := uc.repo.ListPhrases(ctx, repo.ListPhrasesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoadCorpus ListPhrases: %v", err)
		return nil, fmt.Errorf("%w: %v", intent.ErrStoreUnavailable, err)
	}

	corpus := make([]classifier.TrainingExample, len(phrases))
	for i, p := range phrases {
		corpus[i] = classifier.TrainingExample{
			Intent: p.IntentName,
			Phrase: p.Phrase,
		}
	}
	return corpus, nil
}

// ResponseTable returns the intent name → canonical responses mapping used
// by the responder after classification.
func (uc *implUseCase) ResponseTable(ctx context.Context) (map[string][]string, error) {
	intents, err := uc.repo.ListIntents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResponseTable ListIntents: %v", err)
		return nil, fmt.Errorf("%w: %v", intent.ErrStoreUnavailable, err)
	}

	table := make(map[string][]string, len(intents))
	for _, it := range intents {
		table[it.Name] = it.Responses
	}
	return table, nil
}
