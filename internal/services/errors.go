package services

import (
	"errors"
	"fmt"

	"orion/internal/repositories/interfaces"
)

// NotFoundError reports an operation against a missing entity id.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError reports a duplicate-unique-constraint violation, e.g. a
// second review for the same (trail, user) pair.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError carries the full list of per-field messages. Validation
// always completes before any backend write; there are no partial writes.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return e.Errors[0]
}

func newNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func newConflict(message string) error {
	return &ConflictError{Message: message}
}

func newValidation(errs []string) error {
	return &ValidationError{Errors: errs}
}

// wrapNotFound maps the repository's sentinel onto a typed NotFoundError
// naming the entity; other errors pass through unchanged.
func wrapNotFound(err error, resource string) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return newNotFound(resource)
	}
	return err
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// AsValidation returns the validation error details, if err is one.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
