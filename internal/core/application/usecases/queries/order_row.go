package queries

import (
	"database/sql"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"gorm.io/datatypes"
)

const orderColumns = `
			id,
			supervisor_id,
			supervisor_name,
			client_id,
			client_name,
			items,
			status,
			note,
			created_at,
			approved_at,
			completed_at`

// OrderItemResponse is a line item as shown on the dashboards.
// ApprovedQuantity is nil until the order is approved.
type OrderItemResponse struct {
	ProductID        kernel.ID
	ProductName      string
	Quantity         int
	ApprovedQuantity *int
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID             kernel.ID
	SupervisorID   kernel.ID
	SupervisorName string
	ClientID       kernel.ID
	ClientName     string
	Items          []OrderItemResponse
	Status         order.Status
	Note           string
	CreatedAt      time.Time
	ApprovedAt     *time.Time
	CompletedAt    *time.Time
}

type orderItemRow struct {
	ProductID        string `json:"productId"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
	ApprovedQuantity *int   `json:"approvedQuantity,omitempty"`
}

type orderRow struct {
	id             string
	supervisorID   string
	supervisorName string
	clientID       string
	clientName     string
	items          datatypes.JSONSlice[orderItemRow]
	status         string
	note           sql.NullString
	createdAt      time.Time
	approvedAt     sql.NullTime
	completedAt    sql.NullTime
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(rows rowScanner) (orderRow, error) {
	var row orderRow
	err := rows.Scan(
		&row.id,
		&row.supervisorID,
		&row.supervisorName,
		&row.clientID,
		&row.clientName,
		&row.items,
		&row.status,
		&row.note,
		&row.createdAt,
		&row.approvedAt,
		&row.completedAt,
	)
	return row, err
}

func (r orderRow) response() (OrderResponse, error) {
	id, err := kernel.IDFromString(r.id)
	if err != nil {
		return OrderResponse{}, err
	}
	supervisorID, err := kernel.IDFromString(r.supervisorID)
	if err != nil {
		return OrderResponse{}, err
	}
	clientID, err := kernel.IDFromString(r.clientID)
	if err != nil {
		return OrderResponse{}, err
	}
	status, err := order.ParseStatus(r.status)
	if err != nil {
		return OrderResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(r.items))
	for _, item := range r.items {
		productID, idErr := kernel.IDFromString(item.ProductID)
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		items = append(items, OrderItemResponse{
			ProductID:        productID,
			ProductName:      item.ProductName,
			Quantity:         item.Quantity,
			ApprovedQuantity: item.ApprovedQuantity,
		})
	}

	return OrderResponse{
		ID:             id,
		SupervisorID:   supervisorID,
		SupervisorName: r.supervisorName,
		ClientID:       clientID,
		ClientName:     r.clientName,
		Items:          items,
		Status:         status,
		Note:           r.note.String,
		CreatedAt:      r.createdAt.UTC(),
		ApprovedAt:     nullTime(r.approvedAt),
		CompletedAt:    nullTime(r.completedAt),
	}, nil
}

// aggregate restores the domain order, for operations such as export that
// work on the aggregate rather than on the read model.
func (r orderRow) aggregate() (*order.Order, error) {
	resp, err := r.response()
	if err != nil {
		return nil, err
	}

	supervisor, err := kernel.NewSnapshot(resp.SupervisorID, resp.SupervisorName)
	if err != nil {
		return nil, err
	}
	client, err := kernel.NewSnapshot(resp.ClientID, resp.ClientName)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(resp.Items))
	for _, item := range resp.Items {
		restored, itemErr := order.RestoreItem(item.ProductID, item.ProductName, item.Quantity, item.ApprovedQuantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, restored)
	}

	return order.RestoreOrder(resp.ID, supervisor, client, items, resp.Status, resp.Note,
		resp.CreatedAt, resp.ApprovedAt, resp.CompletedAt)
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
