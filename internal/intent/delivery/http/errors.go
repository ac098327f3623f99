package http

import (
	"errors"

	"ai-chatbot/internal/intent"
	pkgErrors "ai-chatbot/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(400, "invalid payload")
	case errors.Is(err, intent.ErrIntentNotFound):
		return pkgErrors.NewHTTPError(404, "intent not found")
	case errors.Is(err, intent.ErrPhraseNotFound):
		return pkgErrors.NewHTTPError(404, "training phrase not found")
	case errors.Is(err, intent.ErrDuplicateName):
		return pkgErrors.NewHTTPError(409, "intent name already exists")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
