package desk

import "errors"

// ErrNotFound is returned when no reservation has the requested id.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("reservation not found")

// ErrInvalidAction is returned by Reduce for an unknown action kind or
// picker mode.  State is left unchanged.
var ErrInvalidAction = errors.New("invalid action")
