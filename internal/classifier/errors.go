package classifier

import "errors"

var (
	// ErrModelNotTrained is returned by Predict before the first successful Train.
	ErrModelNotTrained = errors.New("model not trained")

	// ErrInsufficientTrainingData is returned by Train when the corpus is empty
	// or contains fewer than two distinct intents.
	ErrInsufficientTrainingData = errors.New("insufficient training data: need at least two intents with example phrases")

	// ErrUnknownIntent is returned by Respond when the predicted label has no
	// registered responses. This indicates a training/response-table mismatch.
	ErrUnknownIntent = errors.New("no responses registered for predicted intent")
)
