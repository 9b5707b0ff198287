package errs

import (
	"errors"
	"fmt"
)

// ErrPersistenceFailure is the sentinel for storage and network failures.
var ErrPersistenceFailure = errors.New("persistence failure")

// PersistenceError wraps a driver or network error raised while performing Operation.
type PersistenceError struct {
	Operation string
	Cause     error
}

// NewPersistenceError creates a PersistenceError.
func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistenceFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistenceFailure, e.Operation)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailure
}
