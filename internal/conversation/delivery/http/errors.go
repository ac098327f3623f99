package http

import (
	"errors"

	"ai-chatbot/internal/conversation"
	pkgErrors "ai-chatbot/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(400, "invalid payload")
	case errors.Is(err, conversation.ErrStoreUnavailable):
		return pkgErrors.NewHTTPError(503, "conversation store unavailable")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
