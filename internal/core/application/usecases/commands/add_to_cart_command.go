package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand puts one unit of a product into the actor's cart.
//
// Example:
//
//	cmd, err := NewAddToCartCommand(session, productID)
//	if err != nil {
//	    return err
//	}
//	cart, err := handler.Handle(ctx, cmd)
type AddToCartCommand struct {
	actor     user.Profile
	productID kernel.ID

	guard guard.ConstructorGuard
}

// NewAddToCartCommand validates the actor and product identifier.
func NewAddToCartCommand(actor user.Profile, productID kernel.ID) (AddToCartCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("productId", productID)); err != nil {
		return AddToCartCommand{}, err
	}

	return AddToCartCommand{
		actor:     actor,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) Actor() user.Profile {
	return c.actor
}

func (c AddToCartCommand) ProductID() kernel.ID {
	return c.productID
}
