package user

import (
	"fmt"
	"strings"

	"procurement/internal/pkg/errs"
)

// Role is the sole authorization signal of a user. It is a closed set;
// stored values are normalized on read and unknown values are rejected.
type Role int

const (
	// UnknownRole is the zero value and never valid.
	UnknownRole Role = iota
	Admin
	Supervisor
	Approver
	Purchasing
)

var roleNames = map[Role]string{
	Admin:      "admin",
	Supervisor: "supervisor",
	Approver:   "approver",
	Purchasing: "purchasing",
}

// Roles returns every valid role.
func Roles() []Role {
	return []Role{Admin, Supervisor, Approver, Purchasing}
}

// ParseRole normalizes legacy spellings such as "ADMIN" or " Approver ".
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}
