package apperr

import "errors"

// Sentinel kinds. Services wrap these with a message; handlers map them to
// HTTP status codes with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
	ErrAuthorization = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
)

// Error carries a business failure with its kind attached.
type Error struct {
	kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.kind }

func Validation(msg string) error {
	return &Error{kind: ErrValidation, Message: msg}
}

func Conflict(msg string) error {
	return &Error{kind: ErrConflict, Message: msg}
}

func Authorization(msg string) error {
	return &Error{kind: ErrAuthorization, Message: msg}
}

func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, Message: msg}
}

// StatusCode maps an error to the HTTP status the handler layer should return.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return 400
	case errors.Is(err, ErrAuthorization):
		return 403
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConflict):
		return 409
	default:
		return 500
	}
}
