package errs

import "errors"

// IsValidation reports whether err is one of the input validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// IsRetryable reports whether the caller may re-fetch and try the operation again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrPersistenceFailure)
}
