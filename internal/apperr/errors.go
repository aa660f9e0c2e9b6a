// Package apperr defines the error vocabulary shared by repositories,
// services and the HTTP layer. Lower layers wrap one of the sentinels; the
// HTTP layer classifies with errors.Is / errors.As in a single place.
package apperr

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrRepository   = errors.New("repository error")
	ErrRateLimited  = errors.New("too many requests")
)

// Error carries a machine-readable code alongside a sentinel kind.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// New builds an *Error of the given kind.
func New(kind error, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// NotFound reports that an entity with the given id does not exist.
func NotFound(entity string, id any) error {
	return &Error{
		Kind:    ErrNotFound,
		Code:    "not_found",
		Message: fmt.Sprintf("%s with id %v not found", entity, id),
	}
}

// Conflict reports a uniqueness or state conflict.
func Conflict(code, message string) error {
	return &Error{Kind: ErrConflict, Code: code, Message: message}
}

func Unauthorized(code, message string) error {
	return &Error{Kind: ErrUnauthorized, Code: code, Message: message}
}

func Forbidden(code, message string) error {
	return &Error{Kind: ErrForbidden, Code: code, Message: message}
}

// RateLimitError tells the caller to retry after a delay.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many attempts, retry after %s", e.RetryAfter.Round(time.Second))
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// Repository wraps an unexpected storage failure.
func Repository(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRepository, err)
}

// FieldError describes a validation failure for one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field)
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Code returns the machine code carried by err, or fallback.
func Code(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return fallback
}
