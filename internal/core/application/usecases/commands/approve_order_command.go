package commands

import (
	"errors"
	"maps"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand approves a pending order. Adjustments map product IDs to
// approved quantities; products without an entry are approved in full.
//
// Example:
//
//	cmd, _ := NewApproveOrderCommand(session, orderID, map[kernel.ID]int{productID: 0})
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // someone else already processed this order
//	}
type ApproveOrderCommand struct {
	actor       user.Profile
	orderID     kernel.ID
	adjustments map[kernel.ID]int

	guard guard.ConstructorGuard
}

func NewApproveOrderCommand(actor user.Profile, orderID kernel.ID, adjustments map[kernel.ID]int) (ApproveOrderCommand, error) {
	errList := []error{validateActor(actor), validateID("orderId", orderID)}
	for productID := range adjustments {
		errList = append(errList, validateID("productId", productID))
	}
	if err := errors.Join(errList...); err != nil {
		return ApproveOrderCommand{}, err
	}

	return ApproveOrderCommand{
		actor:       actor,
		orderID:     orderID,
		adjustments: maps.Clone(adjustments),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

func (c ApproveOrderCommand) Actor() user.Profile {
	return c.actor
}

func (c ApproveOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Adjustments returns a copy of the requested approved quantities.
func (c ApproveOrderCommand) Adjustments() map[kernel.ID]int {
	return maps.Clone(c.adjustments)
}
