package usecase

import (
	"ai-chatbot/internal/intent/repository"
	"ai-chatbot/pkg/log"
)

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new intent UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
