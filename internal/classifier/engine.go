package classifier

import (
	"context"
	"sync/atomic"

	"ai-chatbot/pkg/log"
)

// Engine owns the current Model. It has two states, untrained and trained;
// a successful Train moves it to trained and it never goes back. Train
// replaces the model atomically, so concurrent Predict calls always see a
// complete model, old or new, never a mix.
type Engine struct {
	l     log.Logger
	model atomic.Pointer[Model]
}

// NewEngine creates an untrained Engine.
func NewEngine(l log.Logger) *Engine {
	return &Engine{l: l}
}

// Train fits a new model from the corpus and swaps it in. On error the
// currently-serving model (if any) stays in service untouched.
func (e *Engine) Train(ctx context.Context, corpus []TrainingExample) error {
	m, err := Fit(corpus)
	if err != nil {
		e.l.Errorf(ctx, "classifier.Train: %v", err)
		return err
	}
	e.model.Store(m)
	e.l.Infof(ctx, "classifier.Train: fit %d examples, %d intents, %d terms",
		m.NumExamples(), len(m.Labels()), m.VocabularySize())
	return nil
}

// Predict classifies the utterance with the current model.
// ErrModelNotTrained before the first successful Train.
func (e *Engine) Predict(utterance string) (Prediction, error) {
	m := e.model.Load()
	if m == nil {
		return Prediction{}, ErrModelNotTrained
	}
	return m.Predict(utterance), nil
}

// Model returns the currently-serving model, or nil when untrained.
func (e *Engine) Model() *Model { return e.model.Load() }

// Trained reports whether a model is in service.
func (e *Engine) Trained() bool { return e.model.Load() != nil }
