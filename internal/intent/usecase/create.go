package usecase

import (
	"context"
	"strings"

	"ai-chatbot/internal/intent"
	repo "ai-chatbot/internal/intent/repository"
)

// Create creates a new Intent after checking for name uniqueness, then
// attaches any initial training phrases.
func (uc *implUseCase) Create(ctx context.Context, input intent.CreateIntentInput) (intent.CreateIntentOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(input.Responses) == 0 {
		return intent.CreateIntentOutput{}, intent.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneIntent: %v", err)
		return intent.CreateIntentOutput{}, err
	}
	if existing.ID != "" {
		return intent.CreateIntentOutput{}, intent.ErrDuplicateName
	}

	created, err := uc.repo.CreateIntent(ctx, repo.CreateIntentOptions{
		Name:      name,
		Responses: input.Responses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateIntent: %v", err)
		return intent.CreateIntentOutput{}, err
	}

	for _, phrase := range input.Phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		if _, err := uc.repo.CreatePhrase(ctx, repo.CreatePhraseOptions{
			IntentID: created.ID,
			Phrase:   phrase,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.Create CreatePhrase: %v", err)
			return intent.CreateIntentOutput{}, err
		}
	}

	return intent.CreateIntentOutput{Intent: created}, nil
}

// AddPhrase attaches a training phrase to an existing intent.
func (uc *implUseCase) AddPhrase(ctx context.Context, input intent.AddPhraseInput) (intent.AddPhraseOutput, error) {
	phrase := strings.TrimSpace(input.Phrase)
	if phrase == "" {
		return intent.AddPhraseOutput{}, intent.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: input.IntentID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddPhrase GetOneIntent: %v", err)
		return intent.AddPhraseOutput{}, err
	}
	if existing.ID == "" {
		return intent.AddPhraseOutput{}, intent.ErrIntentNotFound
	}

	created, err := uc.repo.CreatePhrase(ctx, repo.CreatePhraseOptions{
		IntentID: input.IntentID,
		Phrase:   phrase,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddPhrase CreatePhrase: %v", err)
		return intent.AddPhraseOutput{}, err
	}
	created.IntentName = existing.Name

	return intent.AddPhraseOutput{Phrase: created}, nil
}
