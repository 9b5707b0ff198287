package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// RejectOrderCommandHandler moves pending orders to rejected.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	policy     services.AccessPolicy
}

func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionRejectOrder); err != nil {
		return nil, err
	}

	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Reject)
	if err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewOrderEvent(ports.OrderRejected, o))
	return o, nil
}
