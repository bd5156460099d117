package services

import "errors"

// Error kinds returned by the services. Handlers map them to HTTP statuses
// with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("Username already exists")
)

// Error carries a client-facing message together with one of the error kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func notFoundError(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}
