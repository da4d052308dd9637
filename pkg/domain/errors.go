package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrPersistence is returned when the persistence layer rejects a write
	ErrPersistence = errors.New("persistence error")
	// ErrUnauthorized is returned when a user is not authorized to perform an action
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries a user-facing reason and matches ErrValidation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ErrRequiredFieldsMissing is returned when a required field is absent or empty.
var ErrRequiredFieldsMissing error = &ValidationError{Reason: "Required fields missing"}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Adapter failure kinds. Use errors.Is against these to classify an AdapterError.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrEmptyResult           = errors.New("empty result")
	ErrInvalidResponseFormat = errors.New("invalid response format")
	ErrRequestFailed         = errors.New("request failed")
	ErrInvalidAmount         = errors.New("invalid amount")
)

// AdapterError is returned by the third-party service adapters (ocr, llm,
// payment, mail). Error() is the user-visible message.
type AdapterError struct {
	Adapter string
	Kind    error
	Message string
	Err     error
}

// NewAdapterError builds an AdapterError. err may be nil.
func NewAdapterError(adapter string, kind error, message string, err error) *AdapterError {
	return &AdapterError{Adapter: adapter, Kind: kind, Message: message, Err: err}
}

func (e *AdapterError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the upstream error.
func (e *AdapterError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
