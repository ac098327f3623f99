package usecase

import (
	"context"
	"errors"

	"ai-chatbot/internal/intent"
	repo "ai-chatbot/internal/intent/repository"
)

// List returns all registered intents.
func (uc *implUseCase) List(ctx context.Context) (intent.ListIntentsOutput, error) {
	intents, err := uc.repo.ListIntents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListIntents: %v", err)
		return intent.ListIntentsOutput{}, err
	}
	return intent.ListIntentsOutput{Intents: intents}, nil
}

// Detail retrieves a single Intent with its training phrases.
// Returns ErrIntentNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (intent.DetailIntentOutput, error) {
	it, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneIntent: %v", err)
		return intent.DetailIntentOutput{}, err
	}
	if it.ID == "" {
		return intent.DetailIntentOutput{}, intent.ErrIntentNotFound
	}

	phrases, err := uc.repo.ListPhrases(ctx, repo.ListPhrasesOptions{IntentID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListPhrases: %v", err)
		return intent.DetailIntentOutput{}, err
	}

	return intent.DetailIntentOutput{Intent: it, Phrases: phrases}, nil
}

// Update modifies an existing Intent. Returns ErrIntentNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input intent.UpdateIntentInput) (intent.UpdateIntentOutput, error) {
	existing, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneIntent: %v", err)
		return intent.UpdateIntentOutput{}, err
	}
	if existing.ID == "" {
		return intent.UpdateIntentOutput{}, intent.ErrIntentNotFound
	}

	name := input.Name
	if name == "" {
		name = existing.Name
	} else if name != existing.Name {
		// renamed: the new name must stay unique
		dup, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{Name: name})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneIntent dup: %v", err)
			return intent.UpdateIntentOutput{}, err
		}
		if dup.ID != "" {
			return intent.UpdateIntentOutput{}, intent.ErrDuplicateName
		}
	}

	responses := input.Responses
	if len(responses) == 0 {
		responses = existing.Responses
	}

	updated, err := uc.repo.UpdateIntent(ctx, repo.UpdateIntentOptions{
		ID:        input.ID,
		Name:      name,
		Responses: responses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateIntent: %v", err)
		return intent.UpdateIntentOutput{}, err
	}
	return intent.UpdateIntentOutput{Intent: updated}, nil
}

// Delete removes an Intent and its phrases. Returns ErrIntentNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneIntent: %v", err)
		return err
	}
	if existing.ID == "" {
		return intent.ErrIntentNotFound
	}
	if err := uc.repo.DeleteIntent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteIntent: %v", err)
		return err
	}
	return nil
}

// DeletePhrase removes a single training phrase by ID.
// Returns ErrPhraseNotFound when no phrase matched.
func (uc *implUseCase) DeletePhrase(ctx context.Context, id string) error {
	if err := uc.repo.DeletePhrase(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return intent.ErrPhraseNotFound
		}
		uc.l.Errorf(ctx, "uc.DeletePhrase: %v", err)
		return err
	}
	return nil
}
