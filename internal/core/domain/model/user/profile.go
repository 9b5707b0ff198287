// Package user models the authenticated caller: identity, display name and role.
package user

import (
	"errors"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned by Validate for a zero Profile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or DefaultProfile")

// Profile is the resolved session of a caller. It is passed explicitly to every
// command and query and is immutable once built.
type Profile struct {
	id          kernel.ID
	email       string
	displayName string
	role        Role
	createdAt   time.Time
}

// NewProfile validates and builds a Profile.
func NewProfile(id kernel.ID, email, displayName string, role Role, createdAt time.Time) (Profile, error) {
	displayName = strings.TrimSpace(displayName)

	var nameErr error
	if displayName == "" {
		nameErr = errs.NewValueIsRequiredError("displayName")
	}

	if err := errors.Join(id.Validate(), nameErr, role.Validate()); err != nil {
		return Profile{}, err
	}

	return Profile{
		id:          id,
		email:       strings.TrimSpace(email),
		displayName: displayName,
		role:        role,
		createdAt:   createdAt.UTC(),
	}, nil
}

// DefaultProfile is the profile given to a user seen for the first time:
// role Supervisor and a display name taken from the email local part.
func DefaultProfile(id kernel.ID, email string, now time.Time) (Profile, error) {
	return NewProfile(id, email, NameFromEmail(email, id.String()), Supervisor, now)
}

// NameFromEmail returns the part of email before '@', or fallback when empty.
func NameFromEmail(email, fallback string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	if local == "" {
		return fallback
	}
	return local
}

func (p Profile) ID() kernel.ID {
	return p.id
}

func (p Profile) Email() string {
	return p.email
}

func (p Profile) DisplayName() string {
	return p.displayName
}

func (p Profile) Role() Role {
	return p.role
}

func (p Profile) CreatedAt() time.Time {
	return p.createdAt
}

// Is reports whether the profile has the given role.
func (p Profile) Is(role Role) bool {
	return p.role == role
}

// WithRole returns a copy of the profile with a different role.
func (p Profile) WithRole(role Role) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	if err := role.Validate(); err != nil {
		return Profile{}, err
	}
	p.role = role
	return p, nil
}

// Snapshot returns the (id, display name) pair copied into orders and clients.
func (p Profile) Snapshot() (kernel.Snapshot, error) {
	return kernel.NewSnapshot(p.id, p.displayName)
}

// Validate reports whether the profile was built by a constructor.
func (p Profile) Validate() error {
	if p.id.IsZero() || p.role.Validate() != nil {
		return ErrProfileIsNotConstructed
	}
	return nil
}
