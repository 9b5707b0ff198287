package ports

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderSubmitted OrderEventType = "order.submitted"
	OrderApproved  OrderEventType = "order.approved"
	OrderRejected  OrderEventType = "order.rejected"
	OrderCompleted OrderEventType = "order.completed"
	OrderDeleted   OrderEventType = "order.deleted"
)

// OrderEvent is published after a committed change.
type OrderEvent struct {
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"orderId"`
	Status     order.Status   `json:"-"`
	StatusName string         `json:"status"`
	ClientName string         `json:"clientName"`
}

// NewOrderEvent builds the event describing o's current state.
func NewOrderEvent(eventType OrderEventType, o *order.Order) OrderEvent {
	return OrderEvent{
		Type:       eventType,
		OrderID:    o.ID().String(),
		Status:     o.Status(),
		StatusName: o.Status().String(),
		ClientName: o.Client().Name(),
	}
}

// OrderEventPublisher delivers order events to interested observers.
// Publishing is best effort and must not block the caller.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent)
}
