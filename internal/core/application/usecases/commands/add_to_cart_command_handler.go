package commands

import (
	"context"
	"fmt"

	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// AddToCartCommandHandler adds catalog products to a supervisor's cart.
// Only active products can be added; the product name is captured with the line.
type AddToCartCommandHandler struct {
	uowFactory ProductUoWFactory
	carts      ports.CartStore
	policy     services.AccessPolicy
}

// NewAddToCartCommandHandler creates a handler reading products through uowFactory.
func NewAddToCartCommandHandler(uowFactory ProductUoWFactory, carts ports.CartStore) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle looks the product up outside of a transaction and increments its cart line.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageCart); err != nil {
		return nil, err
	}

	p, err := h.uowFactory.Create().ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"productId", fmt.Errorf("product %s is not active", p.ID()))
	}

	return h.carts.Modify(ctx, cmd.Actor().ID(), func(c *cart.Cart) error {
		return c.Add(p.ID(), p.Name())
	})
}
