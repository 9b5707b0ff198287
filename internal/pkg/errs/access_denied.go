package errs

import (
	"errors"
	"fmt"
)

// ErrAccessDenied is the sentinel for operations the caller's role does not permit.
var ErrAccessDenied = errors.New("access denied")

// AccessDeniedError reports which role attempted which action.
type AccessDeniedError struct {
	Role   string
	Action string
}

// NewAccessDeniedError creates an AccessDeniedError.
func NewAccessDeniedError(role, action string) *AccessDeniedError {
	return &AccessDeniedError{
		Role:   role,
		Action: action,
	}
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: role %s is not allowed to %s", ErrAccessDenied, e.Role, e.Action)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
