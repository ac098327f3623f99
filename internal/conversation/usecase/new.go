package usecase

import (
	"ai-chatbot/internal/conversation/repository"
	"ai-chatbot/pkg/log"
)

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	repo              repository.Repository
	fallbackThreshold float64
	l                 log.Logger
}

// New creates a new conversation UseCase implementation. The fallback
// threshold must match the responder's so stats classify exchanges the
// same way the live bot did.
func New(repo repository.Repository, fallbackThreshold float64, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:              repo,
		fallbackThreshold: fallbackThreshold,
		l:                 l,
	}
}
