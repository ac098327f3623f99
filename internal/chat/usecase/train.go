package usecase

import (
	"context"
	"fmt"

	"ai-chatbot/internal/chat"
)

// Train rebuilds the model from the stored corpus and refreshes the
// responder's response table. On any failure the previous model (if any)
// stays in service untouched.
func (uc *implUseCase) Train(ctx context.Context) (chat.TrainOutput, error) {
	corpus, err := uc.intents.LoadCorpus(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Train LoadCorpus: %v", err)
		return chat.TrainOutput{}, fmt.Errorf("%w: %v", chat.ErrTrainFailed, err)
	}

	if err := uc.engine.Train(ctx, corpus); err != nil {
		uc.l.Errorf(ctx, "uc.Train Engine.Train: %v", err)
		return chat.TrainOutput{}, fmt.Errorf("%w: %v", chat.ErrTrainFailed, err)
	}

	table, err := uc.intents.ResponseTable(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Train ResponseTable: %v", err)
		return chat.TrainOutput{}, fmt.Errorf("%w: %v", chat.ErrTrainFailed, err)
	}
	uc.responder.SetResponses(table)

	model := uc.engine.Model()
	out := chat.TrainOutput{
		Intents:        len(model.Labels()),
		Examples:       model.NumExamples(),
		VocabularySize: model.VocabularySize(),
		TrainedAt:      model.TrainedAt(),
	}
	uc.l.Infof(ctx, "uc.Train: model in service with %d intents, %d examples, vocabulary %d",
		out.Intents, out.Examples, out.VocabularySize)
	return out, nil
}

// ModelInfo describes the model currently in service.
func (uc *implUseCase) ModelInfo(ctx context.Context) (chat.ModelInfoOutput, error) {
	model := uc.engine.Model()
	if model == nil {
		return chat.ModelInfoOutput{Trained: false}, nil
	}
	return chat.ModelInfoOutput{
		Trained:        true,
		Labels:         model.Labels(),
		VocabularySize: model.VocabularySize(),
		Examples:       model.NumExamples(),
		TrainedAt:      model.TrainedAt(),
	}, nil
}
