package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// CompleteOrderCommandHandler moves approved orders to completed.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	policy     services.AccessPolicy
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionCompleteOrder); err != nil {
		return nil, err
	}

	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Complete(time.Now())
	})
	if err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewOrderEvent(ports.OrderCompleted, o))
	return o, nil
}
