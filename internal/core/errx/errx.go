package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// StoreErrorMessage describes catalog store failures.
	StoreErrorMessage = "catalog store unavailable"
)

// Sentinel errors for the resolution pipeline. Absence of a match is data and
// flows through return values; only these propagate as errors.
var (
	// ErrParseFailure means the text-understanding collaborator could not
	// extract a product from the query. Surfaced as a client error, never retried.
	ErrParseFailure = errors.New("could not extract a product from the query")

	// ErrInvalidInput means a required field was missing from a structured request.
	ErrInvalidInput = errors.New("missing or invalid input")

	// ErrStoreUnavailable means the catalog store failed to answer. Callers must
	// be able to distinguish "nothing matched" from "could not check".
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Invalid marks a request-level validation failure.
func Invalid(message string) *AppError {
	return &AppError{
		Err:     ErrInvalidInput,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// ParseFailure marks an extraction failure from the text-understanding service.
func ParseFailure(err error) *AppError {
	return &AppError{
		Err:     errors.Join(ErrParseFailure, err),
		Status:  http.StatusUnprocessableEntity,
		Message: ErrParseFailure.Error(),
	}
}

// WrapStore wraps a catalog store error with a consistent status and message.
func WrapStore(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     errors.Join(ErrStoreUnavailable, err),
		Status:  http.StatusBadGateway,
		Message: StoreErrorMessage,
	}
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// StatusOf extracts the HTTP status from an error chain, defaulting to 500.
func StatusOf(err error) int {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the safe user-facing message from an error chain.
func MessageOf(err error) string {
	var app *AppError
	if errors.As(err, &app) {
		return app.Message
	}
	return SystemErrorMessage
}
