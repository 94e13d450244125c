package apperrors

import "errors"

// ValidationError indicates a request with bad input shape or range.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation creates a ValidationError with the given message
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// StateError indicates an operation that is invalid for the current
// lifecycle state, e.g. mutating a completed event.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

// NewState creates a StateError with the given message
func NewState(message string) error {
	return &StateError{Message: message}
}

// InvariantViolation indicates a business invariant that would be broken
// by the operation, e.g. settling an event with a negative balance.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string { return e.Message }

// NewInvariant creates an InvariantViolation with the given message
func NewInvariant(message string) error {
	return &InvariantViolation{Message: message}
}

// NotFoundError indicates a referenced record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound creates a NotFoundError with the given message
func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsState reports whether err is a StateError
func IsState(err error) bool {
	var target *StateError
	return errors.As(err, &target)
}

// IsInvariant reports whether err is an InvariantViolation
func IsInvariant(err error) bool {
	var target *InvariantViolation
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
