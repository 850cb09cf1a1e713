// Package store implements the persistence layer for jobs and
// applications on top of the shared gorm instance. Callers decide
// authorization through the policy package; the stores only enforce
// the checks that must be atomic with the row they touch.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that no matching record exists, or that it
	// exists outside the caller's visibility.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden indicates the requester does not own the record.
	ErrForbidden = errors.New("requester does not own this record")
	// ErrStorageUnavailable wraps backend failures the caller cannot
	// correct. Mutations wrapped in it must not be retried blindly.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports a user-correctable problem with a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
