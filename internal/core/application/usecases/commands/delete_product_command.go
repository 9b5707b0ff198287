package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

type DeleteProductCommand struct {
	actor     user.Profile
	productID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(actor user.Profile, productID kernel.ID) (DeleteProductCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("productId", productID)); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{actor: actor, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// DeleteProductCommandHandler removes products from the catalog. Cart lines and
// order items referencing the product keep their captured name.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.actor, services.ActionManageProducts); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Delete(ctx, cmd.productID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
