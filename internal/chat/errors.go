package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
)
