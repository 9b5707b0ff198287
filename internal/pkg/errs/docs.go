// Package errs provides standardized error types for the procurement service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the workflow distinguishes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: a referenced entity does not exist
//   - InvalidTransitionError: a status change attempted from an unexpected source state
//   - AccessDeniedError: the caller's role does not permit the operation
//   - PersistenceError: storage or network failure
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// IsValidation and IsRetryable group the sentinels the way the HTTP layer reports them.
package errs
