// Package ports defines the contracts between the procurement core and its adapters.
// These interfaces establish the boundaries to persistence, caches and push
// channels, enabling dependency inversion and testability.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status transition as a conditional write: the row is
	// written only if its stored status still equals expected.
	//
	// Returns:
	//   - errs.ObjectNotFoundError when the order no longer exists
	//   - errs.InvalidTransitionError when the stored status differs from expected
	//
	// Example:
	//   before := o.Status()
	//   if err := o.Approve(adjustments, now); err != nil {
	//       return err
	//   }
	//   if err := repo.Update(ctx, o, before); err != nil {
	//       return err // another approver got there first
	//   }
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes an order. Only used by admin maintenance.
	Delete(ctx context.Context, id kernel.ID) error
}
