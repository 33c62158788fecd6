package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Machine-readable error codes carried by the typed errors below.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "RESOURCE_NOT_FOUND"
	CodeDataIntegrity = "DATA_INTEGRITY_ERROR"
)

// ValidationError reports input that failed a validation rule. It is always
// correctable by the caller and never indicates stored-data corruption.
type ValidationError struct {
	Message string
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

// Code returns the machine-readable error code.
func (e *ValidationError) Code() string { return CodeValidation }

// Status returns the HTTP-like classification for this error kind.
func (e *ValidationError) Status() int { return 400 }

// NotFoundError reports an operation that referenced an entity id which does
// not exist. Resource names what was looked up, e.g. "person" or
// "pillar 3f2a…".
type NotFoundError struct {
	Resource string
}

// NewNotFoundError builds a NotFoundError for the named resource.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// Code returns the machine-readable error code.
func (e *NotFoundError) Code() string { return CodeNotFound }

// Status returns the HTTP-like classification for this error kind.
func (e *NotFoundError) Status() int { return 404 }

// DataIntegrityError reports internal inconsistency: a write that should
// have affected exactly one row affected zero, or a stored reference that no
// longer resolves. It never indicates a user input problem.
type DataIntegrityError struct {
	Message string
}

// NewDataIntegrityError builds a DataIntegrityError from a format string.
func NewDataIntegrityError(format string, args ...any) *DataIntegrityError {
	return &DataIntegrityError{Message: fmt.Sprintf(format, args...)}
}

func (e *DataIntegrityError) Error() string { return e.Message }

// Code returns the machine-readable error code.
func (e *DataIntegrityError) Code() string { return CodeDataIntegrity }

// Status returns the HTTP-like classification for this error kind.
func (e *DataIntegrityError) Status() int { return 500 }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

// IsDataIntegrity reports whether err is (or wraps) a DataIntegrityError.
func IsDataIntegrity(err error) bool {
	var d *DataIntegrityError
	return errors.As(err, &d)
}
