package bookmark

import "errors"

var (
	ErrInvalidID        = errors.New("bookmark: invalid employee id")
	ErrNilEmployee      = errors.New("bookmark: employee is required")
	ErrStateNotFound    = errors.New("bookmark: state not found")
	ErrMalformedPayload = errors.New("bookmark: malformed payload")
)
