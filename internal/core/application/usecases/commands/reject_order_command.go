package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand rejects a pending order. Rejection is final.
type RejectOrderCommand struct {
	actor   user.Profile
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(actor user.Profile, orderID kernel.ID) (RejectOrderCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("orderId", orderID)); err != nil {
		return RejectOrderCommand{}, err
	}
	return RejectOrderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) Actor() user.Profile {
	return c.actor
}

func (c RejectOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
