// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any store call.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a list or item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrProductNotFound is returned when the lookup service has no product for a barcode.
	ErrProductNotFound = errors.New("product not found")
)

// validationError wraps ErrValidation with a field message.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewValidationError builds an error that matches ErrValidation.
func NewValidationError(format string, args ...any) error {
	return validationError(format, args...)
}

// LookupError describes a failed barcode lookup. Fallback is a usable product
// name derived from the barcode so the caller can still proceed.
type LookupError struct {
	Barcode  string
	Fallback string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup failed for barcode %s: %v", e.Barcode, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError builds a LookupError with the fallback name filled in.
func NewLookupError(barcode string, err error) *LookupError {
	return &LookupError{
		Barcode:  barcode,
		Fallback: FallbackProductName(barcode),
		Err:      err,
	}
}

// FallbackProductName is the synthetic name used when a barcode cannot be resolved.
func FallbackProductName(barcode string) string {
	return "Produkt " + barcode
}
