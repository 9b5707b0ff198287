package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand assigns a new role to an existing user.
type ChangeUserRoleCommand struct {
	actor  user.Profile
	userID kernel.ID
	role   user.Role

	guard guard.ConstructorGuard
}

func NewChangeUserRoleCommand(actor user.Profile, userID kernel.ID, role user.Role) (ChangeUserRoleCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("userId", userID), role.Validate()); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return ChangeUserRoleCommand{
		actor:  actor,
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) Actor() user.Profile {
	return c.actor
}

func (c ChangeUserRoleCommand) UserID() kernel.ID {
	return c.userID
}

func (c ChangeUserRoleCommand) Role() user.Role {
	return c.role
}
