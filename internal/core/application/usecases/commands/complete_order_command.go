package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand marks an approved order as fulfilled.
type CompleteOrderCommand struct {
	actor   user.Profile
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(actor user.Profile, orderID kernel.ID) (CompleteOrderCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("orderId", orderID)); err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) Actor() user.Profile {
	return c.actor
}

func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
