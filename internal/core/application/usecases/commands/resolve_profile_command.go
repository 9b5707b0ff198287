package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrResolveProfileCommandIsNotConstructed = errors.New(
	"ResolveProfileCommand must be created via NewResolveProfileCommand constructor",
)

// ResolveProfileCommand turns verified token claims into a session profile.
type ResolveProfileCommand struct {
	userID kernel.ID
	email  string
	name   string

	guard guard.ConstructorGuard
}

// NewResolveProfileCommand builds the command from the token subject, email and
// optional display name.
func NewResolveProfileCommand(userID kernel.ID, email, name string) (ResolveProfileCommand, error) {
	if err := validateID("userId", userID); err != nil {
		return ResolveProfileCommand{}, err
	}

	return ResolveProfileCommand{
		userID: userID,
		email:  strings.TrimSpace(email),
		name:   strings.TrimSpace(name),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveProfileCommand) Validate() error {
	return c.guard.Validate(ErrResolveProfileCommandIsNotConstructed)
}

func (c ResolveProfileCommand) UserID() kernel.ID {
	return c.userID
}

func (c ResolveProfileCommand) Email() string {
	return c.email
}

func (c ResolveProfileCommand) Name() string {
	return c.name
}
