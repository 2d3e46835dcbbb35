package store

import (
	"errors"
	"fmt"
)

// ErrInvalidPage is returned for a negative page number or a non-positive
// page size.
var ErrInvalidPage = errors.New("invalid page request")

// StorageError wraps a driver failure with the store operation that hit it.
// Stores never retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err, or anything it wraps, is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
