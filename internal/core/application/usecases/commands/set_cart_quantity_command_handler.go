package commands

import (
	"context"

	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// SetCartQuantityCommandHandler updates or removes cart lines.
type SetCartQuantityCommandHandler struct {
	carts  ports.CartStore
	policy services.AccessPolicy
}

func NewSetCartQuantityCommandHandler(carts ports.CartStore) SetCartQuantityCommandHandler {
	return SetCartQuantityCommandHandler{
		carts:  carts,
		policy: services.NewAccessPolicy(),
	}
}

func (h *SetCartQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartQuantityCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageCart); err != nil {
		return nil, err
	}

	return h.carts.Modify(ctx, cmd.Actor().ID(), func(c *cart.Cart) error {
		return c.SetQuantity(cmd.ProductID(), cmd.Quantity())
	})
}
