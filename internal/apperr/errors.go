// Package apperr holds the error taxonomy shared between the request path
// and the background workers. Handlers translate these into HTTP responses;
// the core never writes a status code itself.
package apperr

import "errors"

var (
	// ErrUnauthorized covers every credential failure. Unknown email and
	// wrong password intentionally map to the same value so the response
	// cannot reveal which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers absent records and records owned by someone else.
	ErrNotFound = errors.New("not found")

	// ErrNoContent is returned when content is requested for a folder.
	ErrNoContent = errors.New("folder has no content")
)

// ValidationError is a rejected input field. The message is safe to echo
// back to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError with the given client-facing message.
func Validation(msg string) error { return &ValidationError{Msg: msg} }
