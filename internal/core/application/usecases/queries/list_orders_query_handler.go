package queries

import (
	"context"
	"slices"
	"strings"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListOrdersQueryHandler reads order listings. The actor's role decides which
// statuses can appear; a requested status outside that scope yields an empty list.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	visible, err := h.policy.VisibleOrderStatuses(query.Actor())
	if err != nil {
		return nil, err
	}

	statuses := visible
	if query.Status() != order.Unknown {
		if !slices.Contains(visible, query.Status()) {
			return make([]OrderResponse, 0), nil
		}
		statuses = []order.Status{query.Status()}
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	sql := `SELECT` + orderColumns + `
		FROM orders
		WHERE status IN ?`
	args := []any{names}

	if search := query.Search(); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		sql += ` AND (client_name ILIKE ? OR supervisor_name ILIKE ? OR id ILIKE ?)`
		args = append(args, pattern, pattern, pattern)
	}

	sql += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("order.list", err)
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, errs.NewPersistenceError("order.list", scanErr)
		}

		resp, respErr := row.response()
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("order.list", err)
	}

	return orders, nil
}
