package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for state changes attempted from an unexpected source state.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected state machine transition.
// From is the state the entity was actually in, To the state that was requested.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given entity.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Entity: entity,
		From:   from,
		To:     to,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
