package commands

import (
	"errors"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand replaces a sector's details and supervisor assignment.
type UpdateClientCommand struct {
	actor        user.Profile
	clientID     kernel.ID
	details      client.Details
	supervisorID kernel.ID

	guard guard.ConstructorGuard
}

func NewUpdateClientCommand(
	actor user.Profile,
	clientID kernel.ID,
	details client.Details,
	supervisorID kernel.ID,
) (UpdateClientCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("clientId", clientID)); err != nil {
		return UpdateClientCommand{}, err
	}

	return UpdateClientCommand{
		actor:        actor,
		clientID:     clientID,
		details:      details,
		supervisorID: supervisorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) Actor() user.Profile {
	return c.actor
}

func (c UpdateClientCommand) ClientID() kernel.ID {
	return c.clientID
}

func (c UpdateClientCommand) Details() client.Details {
	return c.details
}

func (c UpdateClientCommand) SupervisorID() kernel.ID {
	return c.supervisorID
}
