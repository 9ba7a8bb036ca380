// Package error defines domain-specific errors for the Mallow backend.
package error

import "errors"

// Custo global domain errors.
var (
	// ErrCustoNotFound is returned when a cost entry is not found or belongs
	// to another user.
	ErrCustoNotFound = errors.New("custo global not found")

	// ErrInvalidTipoCusto is returned when the cost kind is not Fixo or Variável.
	ErrInvalidTipoCusto = errors.New("invalid custo tipo")

	// ErrCustoNameRequired is returned when the cost name is empty.
	ErrCustoNameRequired = errors.New("custo name is required")
)

// CustoErrorCode defines error codes for custo global errors.
// Format: CST-XXYYYY where XX is category and YYYY is specific error.
type CustoErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTipoCusto   CustoErrorCode = "CST-010001"
	ErrCodeMissingCustoFields CustoErrorCode = "CST-010002"

	// Lookup errors (02XXXX)
	ErrCodeCustoNotFound CustoErrorCode = "CST-020001"
)

// CustoError represents a custo global error with code and message.
type CustoError struct {
	Code    CustoErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CustoError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CustoError) Unwrap() error {
	return e.Err
}

// NewCustoError creates a new CustoError with the given code and message.
func NewCustoError(code CustoErrorCode, message string, err error) *CustoError {
	return &CustoError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
