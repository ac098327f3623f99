package conversation

import "time"

// Channel identifies the delivery surface a message arrived on.
const (
	ChannelHTTP     = "http"
	ChannelTelegram = "telegram"
	ChannelCLI      = "cli"
)

// Conversation is one logged exchange: what the user said, what the
// classifier decided, and what the bot answered.
type Conversation struct {
	ID              string
	UserInput       string
	PredictedIntent string
	Confidence      float64
	ResponseText    string
	Channel         string
	CreatedAt       time.Time
}

// AppendInput is the payload for logging a new exchange.
type AppendInput struct {
	UserInput       string
	PredictedIntent string
	Confidence      float64
	ResponseText    string
	Channel         string
}

// AppendOutput wraps the logged exchange.
type AppendOutput struct {
	Conversation Conversation
}

// ListInput filters and paginates the conversation log.
type ListInput struct {
	Intent  string
	Channel string
	Limit   int
	Offset  int
}

// ListOutput is a page of the conversation log, newest first.
type ListOutput struct {
	Conversations []Conversation
	Total         int
	Limit         int
	Offset        int
}

// IntentCount is the number of logged exchanges per predicted intent.
type IntentCount struct {
	Intent string
	Count  int
}

// StatsOutput aggregates the conversation log.
type StatsOutput struct {
	Total         int
	AvgConfidence float64
	FallbackCount int
	FallbackRate  float64
	ByIntent      []IntentCount
}
