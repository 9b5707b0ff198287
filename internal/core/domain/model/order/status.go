package order

import (
	"fmt"
	"strings"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Approved ──> Completed
//	          │
//	          └──> Rejected
//
// Rejected and Completed are terminal. Status values are persisted and sent
// over the wire by their lowercase names.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a submitted order awaiting an approver.
	Pending

	// Approved orders have their approved quantities fixed and wait for purchasing.
	Approved

	// Rejected is a final state set by an approver.
	Rejected

	// Completed is a final state set by purchasing once the order is fulfilled.
	Completed
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Approved:  "approved",
	Rejected:  "rejected",
	Completed: "completed",
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Approved, Rejected, Completed}
}

// ParseStatus converts a wire or storage name into a Status.
// Matching ignores case and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}

// Approve transitions Pending to Approved.
func (s Status) Approve() (Status, error) {
	return s.transition(Pending, Approved)
}

// Reject transitions Pending to Rejected.
func (s Status) Reject() (Status, error) {
	return s.transition(Pending, Rejected)
}

// Complete transitions Approved to Completed.
func (s Status) Complete() (Status, error) {
	return s.transition(Approved, Completed)
}

func (s Status) transition(from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), to.String())
	}
	return to, nil
}
