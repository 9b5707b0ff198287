package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order. An order the actor may not observe
// is reported as AccessDenied, not as missing.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionViewOrders); err != nil {
		return OrderResponse{}, err
	}

	row, err := findOrderRow(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	resp, err := row.response()
	if err != nil {
		return OrderResponse{}, err
	}
	if err = h.policy.AuthorizeOrderRead(query.Actor(), resp.Status); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

func findOrderRow(ctx context.Context, db *gorm.DB, id kernel.ID) (orderRow, error) {
	rows, err := db.WithContext(ctx).Raw(`SELECT`+orderColumns+`
		FROM orders
		WHERE id = ?`, id.String()).Rows()
	if err != nil {
		return orderRow{}, errs.NewPersistenceError("order.get", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return orderRow{}, errs.NewPersistenceError("order.get", err)
		}
		return orderRow{}, errs.NewObjectNotFoundError("orderId", id)
	}

	row, err := scanOrderRow(rows)
	if err != nil {
		return orderRow{}, errs.NewPersistenceError("order.get", err)
	}
	return row, nil
}
