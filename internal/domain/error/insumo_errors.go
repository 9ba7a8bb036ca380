// Package error defines domain-specific errors for the Mallow backend.
package error

import "errors"

// Insumo domain errors.
var (
	// ErrInsumoNotFound is returned when an insumo is not found or belongs to
	// another user.
	ErrInsumoNotFound = errors.New("insumo not found")

	// ErrInsumoNameRequired is returned when an insumo is created without a name.
	ErrInsumoNameRequired = errors.New("insumo name is required")
)

// InsumoErrorCode defines error codes for insumo errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsumoErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInsumoNameRequired  InsumoErrorCode = "INS-010001"
	ErrCodeMissingInsumoFields InsumoErrorCode = "INS-010002"

	// Lookup errors (02XXXX)
	ErrCodeInsumoNotFound InsumoErrorCode = "INS-020001"
)

// InsumoError represents an insumo error with code and message.
type InsumoError struct {
	Code    InsumoErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsumoError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsumoError) Unwrap() error {
	return e.Err
}

// NewInsumoError creates a new InsumoError with the given code and message.
func NewInsumoError(code InsumoErrorCode, message string, err error) *InsumoError {
	return &InsumoError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
