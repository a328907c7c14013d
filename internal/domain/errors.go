package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found, or is
	// not owned by the caller (ownership is never confirmed to others).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart indicates a checkout attempt against an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutConflict indicates the cart changed under a concurrent
	// checkout; the operation rolled back and may be retried.
	ErrCheckoutConflict = errors.New("cart was modified concurrently")
	// ErrCategoryInUse indicates a delete of a category that still has
	// products associated with it.
	ErrCategoryInUse = errors.New("category has associated products")
	// ErrProductInUse indicates a delete of a product that is still
	// referenced by order history.
	ErrProductInUse = errors.New("product is referenced by existing orders")
)

// ValidationError carries a client-facing description of malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
