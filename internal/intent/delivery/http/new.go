package http

import (
	"ai-chatbot/internal/intent"
	"ai-chatbot/pkg/log"
)

// Handler is the public interface for the intent HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Detail(c interface{})
	Update(c interface{})
	Delete(c interface{})
	AddPhrase(c interface{})
	DeletePhrase(c interface{})
}

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
