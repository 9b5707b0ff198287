package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces a product's catalog attributes. Carts and
// orders keep the product name they captured.
type UpdateProductCommand struct {
	actor     user.Profile
	productID kernel.ID
	details   product.Details

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(actor user.Profile, productID kernel.ID, details product.Details) (UpdateProductCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("productId", productID)); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		actor:     actor,
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) Actor() user.Profile {
	return c.actor
}

func (c UpdateProductCommand) ProductID() kernel.ID {
	return c.productID
}

func (c UpdateProductCommand) Details() product.Details {
	return c.details
}
