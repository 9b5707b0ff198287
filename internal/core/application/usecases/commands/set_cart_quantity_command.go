package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrSetCartQuantityCommandIsNotConstructed = errors.New(
	"SetCartQuantityCommand must be created via NewSetCartQuantityCommand constructor",
)

// SetCartQuantityCommand replaces the quantity of a cart line.
// A quantity of zero or below removes the line.
type SetCartQuantityCommand struct {
	actor     user.Profile
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

func NewSetCartQuantityCommand(actor user.Profile, productID kernel.ID, quantity int) (SetCartQuantityCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("productId", productID)); err != nil {
		return SetCartQuantityCommand{}, err
	}

	return SetCartQuantityCommand{
		actor:     actor,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewRemoveFromCartCommand is SetCartQuantity with quantity 0.
func NewRemoveFromCartCommand(actor user.Profile, productID kernel.ID) (SetCartQuantityCommand, error) {
	return NewSetCartQuantityCommand(actor, productID, 0)
}

func (c SetCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartQuantityCommandIsNotConstructed)
}

func (c SetCartQuantityCommand) Actor() user.Profile {
	return c.actor
}

func (c SetCartQuantityCommand) ProductID() kernel.ID {
	return c.productID
}

func (c SetCartQuantityCommand) Quantity() int {
	return c.quantity
}
