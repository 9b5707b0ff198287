package queries

import (
	"errors"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var (
	ErrListClientsQueryIsNotConstructed = errors.New(
		"ListClientsQuery must be created via NewListClientsQuery constructor",
	)
	ErrListAvailableClientsQueryIsNotConstructed = errors.New(
		"ListAvailableClientsQuery must be created via NewListAvailableClientsQuery constructor",
	)
)

// ListClientsQuery lists every client, active or not. Admin only.
type ListClientsQuery struct {
	actor user.Profile

	guard guard.ConstructorGuard
}

func NewListClientsQuery(actor user.Profile) (ListClientsQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListClientsQuery{}, err
	}
	return ListClientsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

func (q ListClientsQuery) Actor() user.Profile {
	return q.actor
}

// ListAvailableClientsQuery lists the active clients owned by the supervisor,
// i.e. the clients an order can be submitted for.
type ListAvailableClientsQuery struct {
	actor user.Profile

	guard guard.ConstructorGuard
}

func NewListAvailableClientsQuery(actor user.Profile) (ListAvailableClientsQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListAvailableClientsQuery{}, err
	}
	return ListAvailableClientsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableClientsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableClientsQueryIsNotConstructed)
}

func (q ListAvailableClientsQuery) Actor() user.Profile {
	return q.actor
}
