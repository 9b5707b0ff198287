package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrExportOrderQueryIsNotConstructed = errors.New(
	"ExportOrderQuery must be created via NewExportOrderQuery constructor",
)

// ExportOrderQuery renders an approved or completed order as a CSV file.
type ExportOrderQuery struct {
	actor   user.Profile
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewExportOrderQuery(actor user.Profile, orderID kernel.ID) (ExportOrderQuery, error) {
	if err := errors.Join(validateActor(actor), validateID("orderId", orderID)); err != nil {
		return ExportOrderQuery{}, err
	}
	return ExportOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportOrderQuery) Validate() error {
	return q.guard.Validate(ErrExportOrderQueryIsNotConstructed)
}

func (q ExportOrderQuery) Actor() user.Profile {
	return q.actor
}

func (q ExportOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
