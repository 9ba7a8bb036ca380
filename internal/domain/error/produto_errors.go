// Package error defines domain-specific errors for the Mallow backend.
package error

import "errors"

// Produto domain errors.
var (
	// ErrProdutoNotFound is returned when a product is not found or belongs to
	// another user.
	ErrProdutoNotFound = errors.New("produto not found")

	// ErrProdutoNameRequired is returned when a product is created without a name.
	ErrProdutoNameRequired = errors.New("produto name is required")

	// ErrRecipeInsumoNotFound is returned when a recipe line references an
	// insumo the user does not own.
	ErrRecipeInsumoNotFound = errors.New("recipe references unknown insumo")
)

// ProdutoErrorCode defines error codes for produto errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProdutoErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProdutoNameRequired  ProdutoErrorCode = "PRD-010001"
	ErrCodeMissingProdutoFields ProdutoErrorCode = "PRD-010002"
	ErrCodeRecipeInsumoNotFound ProdutoErrorCode = "PRD-010003"

	// Lookup errors (02XXXX)
	ErrCodeProdutoNotFound ProdutoErrorCode = "PRD-020001"
)

// ProdutoError represents a produto error with code and message.
type ProdutoError struct {
	Code    ProdutoErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProdutoError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProdutoError) Unwrap() error {
	return e.Err
}

// NewProdutoError creates a new ProdutoError with the given code and message.
func NewProdutoError(code ProdutoErrorCode, message string, err error) *ProdutoError {
	return &ProdutoError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
