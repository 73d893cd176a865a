package model

import "fmt"

// FieldError is one field-level problem reported back to the client.
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error codes carried in FieldError.Code.
const (
	ErrRequired          = "required"
	ErrRangeInvalid      = "range_invalid"
	ErrPatternMismatch   = "pattern_mismatch"
	ErrEnumInvalid       = "enum_invalid"
	ErrUniqueViolation   = "unique_violation"
	ErrRefNotFound       = "ref_not_found"
	ErrInsufficientStock = "insufficient_stock"
)

func Ferr(code, field, msg string) FieldError {
	return FieldError{Code: code, Field: field, Message: msg}
}

// ValidationError carries field errors across the service boundary so
// handlers can render the usual errors envelope.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("%s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

func NewValidationError(errs ...FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
