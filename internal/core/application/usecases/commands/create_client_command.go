package commands

import (
	"errors"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand registers a new sector. A zero supervisorID leaves it unassigned.
type CreateClientCommand struct {
	actor        user.Profile
	details      client.Details
	supervisorID kernel.ID

	guard guard.ConstructorGuard
}

func NewCreateClientCommand(actor user.Profile, details client.Details, supervisorID kernel.ID) (CreateClientCommand, error) {
	if err := validateActor(actor); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		actor:        actor,
		details:      details,
		supervisorID: supervisorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) Actor() user.Profile {
	return c.actor
}

func (c CreateClientCommand) Details() client.Details {
	return c.details
}

func (c CreateClientCommand) SupervisorID() kernel.ID {
	return c.supervisorID
}
