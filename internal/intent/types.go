package intent

import "time"

// --- Domain Models ---

// Intent is a labeled category of user request with its canonical responses.
// Name is the classification label; names are unique.
type Intent struct {
	ID        string
	Name      string
	Responses []string // ordered; one is selected per matched request
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrainingPhrase is one labeled example utterance for an intent.
type TrainingPhrase struct {
	ID         string
	IntentID   string
	IntentName string
	Phrase     string
	CreatedAt  time.Time
}

// --- UseCase Inputs ---

type CreateIntentInput struct {
	Name      string
	Responses []string
	Phrases   []string
}

type UpdateIntentInput struct {
	ID        string
	Name      string
	Responses []string
}

type AddPhraseInput struct {
	IntentID string
	Phrase   string
}

// --- UseCase Outputs ---

type CreateIntentOutput struct {
	Intent Intent
}

type ListIntentsOutput struct {
	Intents []Intent
}

type DetailIntentOutput struct {
	Intent  Intent
	Phrases []TrainingPhrase
}

type UpdateIntentOutput struct {
	Intent Intent
}

type AddPhraseOutput struct {
	Phrase TrainingPhrase
}
