package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when submitting without any cart line.
var ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")

// SubmitOrderCommandHandler creates pending orders from carts.
//
// The client and supervisor names are copied into the order. The cart is
// cleared only after the order has been committed.
type SubmitOrderCommandHandler struct {
	uowFactory SubmissionUoWFactory
	carts      ports.CartStore
	publisher  ports.OrderEventPublisher
	policy     services.AccessPolicy
	logger     *slog.Logger
}

func NewSubmitOrderCommandHandler(
	uowFactory SubmissionUoWFactory,
	carts ports.CartStore,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
		logger:     logger.With("component", "submit_order_handler"),
	}
}

// Handle validates the cart and the client before opening a transaction and
// returns the new order's ID.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}
	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.ActionSubmitOrder); err != nil {
		return kernel.ID{}, err
	}

	current, err := h.carts.Get(ctx, actor.ID())
	if err != nil {
		return kernel.ID{}, err
	}
	if current.IsEmpty() {
		return kernel.ID{}, ErrCartIsEmpty
	}
	items, err := current.OrderItems()
	if err != nil {
		return kernel.ID{}, err
	}

	supervisor, err := actor.Snapshot()
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return kernel.ID{}, err
	}
	if !c.IsOwnedBy(actor.ID()) {
		return kernel.ID{}, errs.NewAccessDeniedError(actor.Role().String(), "submit orders for client "+c.ID().String())
	}
	if !c.IsAvailableTo(actor.ID()) {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(
			"clientId", fmt.Errorf("client %s is not active", c.ID()))
	}

	client, err := kernel.NewSnapshot(c.ID(), c.DisplayName())
	if err != nil {
		return kernel.ID{}, err
	}

	o, err := order.NewOrder(kernel.NewID(), supervisor, client, items, cmd.Note(), time.Now())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	if err = h.carts.Clear(ctx, actor.ID()); err != nil {
		h.logger.WarnContext(ctx, "Order submitted but cart was not cleared",
			"order_id", o.ID().String(), "error", err)
	}
	h.publisher.Publish(ctx, ports.NewOrderEvent(ports.OrderSubmitted, o))

	return o.ID(), nil
}
