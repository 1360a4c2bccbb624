// Package domain holds the quote, SKU, and chat session models plus the
// business error taxonomy. Domain errors describe business failures
// (quote not found, SKU code taken, model unavailable) without any HTTP
// vocabulary; the http and storage adapters translate them at the edges.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is. Typed errors below unwrap
// to these so callers can classify without knowing the concrete type.
var (
	// ErrNotFound: the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict: the operation clashes with current state, e.g. a
	// duplicate SKU code or an illegal quote status transition.
	ErrConflict = errors.New("conflict")

	// ErrValidation: a business rule rejected the input.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden: the caller may not perform this operation, e.g.
	// reading another user's quote.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable: a dependency (database, AI model) is down.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the missing entity and, when known, its ID.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError builds a NotFoundError for the given entity and ID.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError carries the entity and the rule that was violated.
type ConflictError struct {
	Entity  string
	Reason  string
	Details string
}

func (e *ConflictError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s conflict: %s (%s)", e.Entity, e.Reason, e.Details)
	}

	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError builds a ConflictError for the given entity and reason.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// NewConflictErrorWithDetails additionally records detail text, used when
// the reason alone does not identify the offending state.
func NewConflictErrorWithDetails(entity, reason, details string) error {
	return &ConflictError{Entity: entity, Reason: reason, Details: details}
}

// ValidationError names the offending field. Value is optional and only
// set when echoing the input back helps the caller.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue includes the rejected value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ForbiddenError names the denied operation.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
	}

	return fmt.Sprintf("operation %q forbidden", e.Operation)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError builds a ForbiddenError for the given operation.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError names the failing dependency.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError builds an UnavailableError for the given service.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// Classification helpers. These see through fmt.Errorf %w wrapping, so
// adapters can annotate errors freely without breaking callers.

// IsNotFound reports whether err is, or wraps, a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is, or wraps, a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation reports whether err is, or wraps, a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsForbidden reports whether err is, or wraps, a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnavailable reports whether err is, or wraps, an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
