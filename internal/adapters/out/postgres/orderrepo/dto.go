// Package orderrepo persists order aggregates in the orders table. Line items
// are stored as a jsonb array on the order row, so an order and its items are
// always written by a single statement.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its lowercase name and indexed together with created_at
// for the role-scoped listings.
type OrderDTO struct {
	ID             string                       `gorm:"type:text;primaryKey"`
	SupervisorID   string                       `gorm:"type:text;not null;index"`
	SupervisorName string                       `gorm:"not null"`
	ClientID       string                       `gorm:"type:text;not null;index"`
	ClientName     string                       `gorm:"not null"`
	Items          datatypes.JSONSlice[ItemDTO] `gorm:"type:jsonb;not null"`
	Status         string                       `gorm:"type:text;not null;index"`
	Note           string                       `gorm:"type:text"`
	CreatedAt      time.Time                    `gorm:"not null;index"`
	ApprovedAt     *time.Time
	CompletedAt    *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items jsonb array.
type ItemDTO struct {
	ProductID        string `json:"productId"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
	ApprovedQuantity *int   `json:"approvedQuantity,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		dto := ItemDTO{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
		}
		if approved, ok := item.ApprovedQuantity(); ok {
			dto.ApprovedQuantity = &approved
		}
		items = append(items, dto)
	}

	return OrderDTO{
		ID:             o.ID().String(),
		SupervisorID:   o.Supervisor().ID().String(),
		SupervisorName: o.Supervisor().Name(),
		ClientID:       o.Client().ID().String(),
		ClientName:     o.Client().Name(),
		Items:          items,
		Status:         o.Status().String(),
		Note:           o.Note(),
		CreatedAt:      o.CreatedAt(),
		ApprovedAt:     o.ApprovedAt(),
		CompletedAt:    o.CompletedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	supervisor, err := snapshot(dto.SupervisorID, dto.SupervisorName)
	if err != nil {
		return nil, err
	}
	client, err := snapshot(dto.ClientID, dto.ClientName)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.IDFromString(itemDTO.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.RestoreItem(productID, itemDTO.ProductName, itemDTO.Quantity, itemDTO.ApprovedQuantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, supervisor, client, items, status, dto.Note,
		dto.CreatedAt, dto.ApprovedAt, dto.CompletedAt)
}

func snapshot(rawID, name string) (kernel.Snapshot, error) {
	id, err := kernel.IDFromString(rawID)
	if err != nil {
		return kernel.Snapshot{}, err
	}
	return kernel.NewSnapshot(id, name)
}
