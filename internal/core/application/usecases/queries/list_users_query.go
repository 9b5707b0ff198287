package queries

import (
	"errors"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists user profiles, optionally restricted to one role.
// The supervisor picker of the client form uses role user.Supervisor.
type ListUsersQuery struct {
	actor user.Profile
	role  user.Role

	guard guard.ConstructorGuard
}

// NewListUsersQuery builds the query. role user.UnknownRole lists everybody.
func NewListUsersQuery(actor user.Profile, role user.Role) (ListUsersQuery, error) {
	var roleErr error
	if role != user.UnknownRole {
		roleErr = role.Validate()
	}
	if err := errors.Join(validateActor(actor), roleErr); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{actor: actor, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Actor() user.Profile {
	return q.actor
}

func (q ListUsersQuery) Role() user.Role {
	return q.role
}
