package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message text is empty")
	ErrNotTrained   = errors.New("no model in service")
	ErrTrainFailed  = errors.New("training failed")
)
