package commands

import (
	"errors"

	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog.
type CreateProductCommand struct {
	actor   user.Profile
	details product.Details

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(actor user.Profile, details product.Details) (CreateProductCommand, error) {
	if err := validateActor(actor); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{actor: actor, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Actor() user.Profile {
	return c.actor
}

func (c CreateProductCommand) Details() product.Details {
	return c.details
}
