package grievance

import "errors"

var (
	ErrEmptyGrievance = errors.New("grievance text is required")
)
