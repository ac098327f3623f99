package http

import (
	"ai-chatbot/internal/conversation"
	"ai-chatbot/pkg/log"
)

// Handler is the public interface for the conversation HTTP delivery layer.
type Handler interface {
	List(c interface{})
	Stats(c interface{})
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
