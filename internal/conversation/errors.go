package conversation

import "errors"

var (
	ErrInvalidPayload   = errors.New("invalid conversation payload")
	ErrStoreUnavailable = errors.New("conversation store unavailable")
)
