package intent

import "errors"

var (
	ErrIntentNotFound = errors.New("intent not found")
	ErrPhraseNotFound = errors.New("training phrase not found")
	ErrDuplicateName  = errors.New("intent name already exists")
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrStoreUnavailable wraps repository failures during corpus loading.
	// Training must abort on it and keep any prior model in service.
	ErrStoreUnavailable = errors.New("training data store unavailable")
)
