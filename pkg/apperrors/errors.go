package apperrors

import "errors"

// ErrNotFound indicates that an identifier did not resolve to a record.
var ErrNotFound = errors.New("record not found")

// ValidationError indicates a missing or malformed required field. Fields
// maps a field name to a human-readable message when field-level detail is
// available.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewFieldValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError indicates a uniqueness violation, or a delete blocked by
// existing references. BillCount carries the number of referencing bills
// when a resident delete is blocked, so the caller can decide on a forced
// retry.
type ConflictError struct {
	Message   string
	BillCount int64
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// DependencyError indicates that a backing dependency (store, mail relay)
// is unreachable or misconfigured.
type DependencyError struct {
	Message string
	Err     error
}

func NewDependencyError(message string, err error) *DependencyError {
	return &DependencyError{Message: message, Err: err}
}

func (e *DependencyError) Error() string {
	return e.Message
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
