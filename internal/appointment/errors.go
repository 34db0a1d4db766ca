package appointment

import "errors"

// Domain-specific errors for the appointment package.
var (
	ErrMissingField = errors.New("appointment is missing a required field")
	ErrStore        = errors.New("failed to store appointment")
)
