package http

import (
	"errors"

	"ai-chatbot/internal/chat"
	pkgErrors "ai-chatbot/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "message text is required")
	case errors.Is(err, chat.ErrNotTrained):
		return pkgErrors.NewHTTPError(503, "no model in service, train first")
	case errors.Is(err, chat.ErrTrainFailed):
		return pkgErrors.NewHTTPError(503, "training failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
