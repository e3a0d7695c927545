package callanalysis

import "errors"

var (
	ErrEmptyTranscript = errors.New("transcript text is required")
)
