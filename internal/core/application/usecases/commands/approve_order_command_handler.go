package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// ApproveOrderCommandHandler moves pending orders to approved, persisting the
// adjusted quantities and the status in the same conditional write.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	policy     services.AccessPolicy
}

func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionApproveOrder); err != nil {
		return nil, err
	}

	o, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Approve(cmd.Adjustments(), time.Now())
	})
	if err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewOrderEvent(ports.OrderApproved, o))
	return o, nil
}
