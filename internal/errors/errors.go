package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the appdirs CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input or flags).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions).
	ExitSystem = 2
)

// Sentinel errors for common CLI failure conditions.
var (
	// ErrUnknownFormat indicates an unrecognized output format name.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownKind indicates an unrecognized directory kind name.
	ErrUnknownKind = errors.New("unknown directory kind")
)

// ExitError wraps an error with an exit code and an optional suggestion for
// the user. It supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable hint printed alongside the error.
	Suggestion string
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code.
func NewSystemError(err error) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem}
}

// Error returns the message of the underlying error, or a generic message
// when there is none.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error so errors.Is and errors.As can walk
// the chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
