package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads a single order.
type GetOrderQuery struct {
	actor   user.Profile
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor user.Profile, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(validateActor(actor), validateID("orderId", orderID)); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() user.Profile {
	return q.actor
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
