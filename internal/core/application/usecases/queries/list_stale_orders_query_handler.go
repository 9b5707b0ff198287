package queries

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListStaleOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListStaleOrdersQueryHandler(db *gorm.DB) ListStaleOrdersQueryHandler {
	return ListStaleOrdersQueryHandler{db: db}
}

// Handle returns pending orders created before the cutoff, oldest first.
func (h ListStaleOrdersQueryHandler) Handle(ctx context.Context, query ListStaleOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+orderColumns+`
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at, id`, order.Pending.String(), query.CreatedBefore()).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("order.list_stale", err)
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, errs.NewPersistenceError("order.list_stale", scanErr)
		}
		resp, respErr := row.response()
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("order.list_stale", err)
	}

	return orders, nil
}
