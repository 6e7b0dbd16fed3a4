package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrAllProvidersFailed = errors.New("all providers failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PublishError is a classified failure returned by a channel publish
// adapter. It is always captured and converted into a failed draft,
// never allowed to abort a scanner sweep.
type PublishError struct {
	Kind    PublishErrorKind
	Message string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish failed (%s): %s", e.Kind, e.Message)
}

// NewPublishError creates a PublishError with the given kind.
func NewPublishError(kind PublishErrorKind, format string, args ...any) *PublishError {
	return &PublishError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// PublishErrorText returns the operator-facing failure reason for err.
// Classified publish errors keep their kind prefix; anything else yields
// the plain error text.
func PublishErrorText(err error) string {
	if err == nil {
		return ""
	}
	var pe *PublishError
	if errors.As(err, &pe) {
		return pe.Error()
	}
	return err.Error()
}
