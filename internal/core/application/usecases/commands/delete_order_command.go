package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order. It is an admin maintenance operation
// outside of the workflow.
type DeleteOrderCommand struct {
	actor   user.Profile
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actor user.Profile, orderID kernel.ID) (DeleteOrderCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("orderId", orderID)); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// DeleteOrderCommandHandler deletes orders and announces the deletion.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	policy     services.AccessPolicy
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.actor, services.ActionDeleteOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.orderID)
	if err != nil {
		return err
	}
	if err = orderRepo.Delete(ctx, cmd.orderID); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.NewOrderEvent(ports.OrderDeleted, o))
	return nil
}
