package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for well-known HTTP statuses returned by the user API.
// A [StatusError] unwraps to one of these so callers can use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// StatusError is returned for any non-2xx response. It keeps the status code
// and trimmed response body; Unwrap yields the matching sentinel, or nil for
// statuses without one.
type StatusError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *StatusError) Error() string {
	if e.kind != nil {
		return fmt.Sprintf("%s: %s", e.kind, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}
