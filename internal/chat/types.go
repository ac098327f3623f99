package chat

import "time"

// Live-data intents restored from the original bot: when the classifier
// lands on one of these with enough confidence, the canned response is
// suffixed with fresh data from the matching upstream API.
const (
	IntentWeather = "weather"
	IntentNews    = "news"
	IntentCrypto  = "crypto"
)

// SendInput is one user message entering the pipeline.
type SendInput struct {
	Text    string
	Channel string
}

// SendOutput is the bot's answer plus the classification that produced it.
type SendOutput struct {
	Reply      string
	Intent     string
	Confidence float64
	Fallback   bool
}

// TrainOutput summarizes a completed training run.
type TrainOutput struct {
	Intents        int
	Examples       int
	VocabularySize int
	TrainedAt      time.Time
}

// ModelInfoOutput describes the model currently in service.
type ModelInfoOutput struct {
	Trained        bool
	Labels         []string
	VocabularySize int
	Examples       int
	TrainedAt      time.Time
}
