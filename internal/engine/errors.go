package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the contact model.
// Use errors.Is() for matching - never compare error strings.
var (
	// ErrValidation reports a field value that fails its format contract.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound reports a referenced name or phone that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate reports an attempt to add a record whose name already exists.
	ErrDuplicate = errors.New("duplicate name")
)

// Field-specific validation errors. Each wraps ErrValidation.
var (
	ErrEmptyName       = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrInvalidPhone    = fmt.Errorf("%w: phone should be 10 digits long", ErrValidation)
	ErrInvalidBirthday = fmt.Errorf("%w: invalid date format, use DD.MM.YYYY", ErrValidation)
)

// IsValidation returns true if err is any field validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound returns true if err represents a missing name or phone.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
