package queries

import (
	"context"

	"procurement/internal/core/domain/services"

	"gorm.io/gorm"
)

// ExportOrderQueryHandler loads the order aggregate and hands it to the
// OrderExporter. Pending and rejected orders are refused by the exporter.
type ExportOrderQueryHandler struct {
	db       *gorm.DB
	policy   services.AccessPolicy
	exporter services.OrderExporter
}

func NewExportOrderQueryHandler(db *gorm.DB) ExportOrderQueryHandler {
	return ExportOrderQueryHandler{
		db:       db,
		policy:   services.NewAccessPolicy(),
		exporter: services.NewOrderExporter(),
	}
}

func (h ExportOrderQueryHandler) Handle(ctx context.Context, query ExportOrderQuery) (services.OrderExport, error) {
	if err := query.Validate(); err != nil {
		return services.OrderExport{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionExportOrder); err != nil {
		return services.OrderExport{}, err
	}

	row, err := findOrderRow(ctx, h.db, query.OrderID())
	if err != nil {
		return services.OrderExport{}, err
	}

	o, err := row.aggregate()
	if err != nil {
		return services.OrderExport{}, err
	}
	if err = h.policy.AuthorizeOrderRead(query.Actor(), o.Status()); err != nil {
		return services.OrderExport{}, err
	}

	return h.exporter.Export(o)
}
