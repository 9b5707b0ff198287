package kernel

import (
	"strings"

	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// maxIDLength bounds identifiers accepted from external systems.
const maxIDLength = 128

// ID is an opaque identifier. Identifiers generated by the service are UUID v4
// strings; identifiers coming from the identity provider are kept verbatim.
//
// The zero value is invalid.
//
// Example:
//
//	orderID := kernel.NewID()
//	userID, err := kernel.IDFromString(claims.Subject)
//	if err != nil {
//	    return err
//	}
type ID struct {
	value string
}

// NewID generates a new random identifier.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString wraps an externally supplied identifier. Surrounding whitespace is
// trimmed; empty, overlong and multi-line values are rejected.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	if len(s) > maxIDLength || strings.ContainsAny(s, "\r\n") {
		return ID{}, errs.NewValueIsInvalidError("id")
	}
	return ID{value: s}, nil
}

// MustIDFromString is IDFromString for literals known to be valid. It panics otherwise.
func MustIDFromString(s string) ID {
	id, err := IDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return id.value
}

// Short returns at most the first n characters of the identifier.
func (id ID) Short(n int) string {
	if n < 0 || len(id.value) <= n {
		return id.value
	}
	return id.value[:n]
}

// IsZero reports whether the ID is the zero value.
func (id ID) IsZero() bool {
	return id.value == ""
}

// IsEqual compares two identifiers.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
