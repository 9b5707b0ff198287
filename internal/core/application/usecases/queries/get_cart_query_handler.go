package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// CartLineResponse is one cart line.
type CartLineResponse struct {
	ProductID   kernel.ID
	ProductName string
	Quantity    int
}

// CartResponse lists the lines in insertion order. TotalQuantity is the sum
// of all line quantities.
type CartResponse struct {
	Lines         []CartLineResponse
	TotalQuantity int
}

// GetCartQueryHandler reads carts from the CartStore.
type GetCartQueryHandler struct {
	carts  ports.CartStore
	policy services.AccessPolicy
}

func NewGetCartQueryHandler(carts ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts, policy: services.NewAccessPolicy()}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionManageCart); err != nil {
		return CartResponse{}, err
	}

	c, err := h.carts.Get(ctx, query.Actor().ID())
	if err != nil {
		return CartResponse{}, err
	}

	resp := CartResponse{Lines: make([]CartLineResponse, 0, c.Len())}
	for _, line := range c.Lines() {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		})
		resp.TotalQuantity += line.Quantity
	}

	return resp, nil
}
