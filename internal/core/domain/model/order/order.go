package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// maxNoteLength bounds the free-text note, in characters.
const maxNoteLength = 1000

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order would have no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the purchase workflow.
//
// Order follows these invariants:
//   - Must have a valid identifier and supervisor/client snapshots
//   - Has at least one line item and no two items for the same product
//   - Status transitions follow the Status state machine
//   - approvedAt is set by Approve, completedAt by Complete
//   - The snapshots never change after construction
type Order struct {
	id         kernel.ID
	supervisor kernel.Snapshot
	client     kernel.Snapshot
	items      []Item
	status     Status
	note       string

	createdAt   time.Time
	approvedAt  *time.Time
	completedAt *time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a Pending order from a submitted cart.
//
// Example:
//
//	supervisor, _ := kernel.NewSnapshot(profile.ID(), profile.DisplayName())
//	client, _ := kernel.NewSnapshot(c.ID(), c.Name())
//	item, _ := order.NewItem(productID, "Detergente", 1)
//	o, err := order.NewOrder(kernel.NewID(), supervisor, client, []order.Item{item}, "", time.Now())
func NewOrder(
	id kernel.ID,
	supervisor kernel.Snapshot,
	client kernel.Snapshot,
	items []Item,
	note string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("createdAt")
	}

	if err := errors.Join(
		o.setID(id),
		o.setSupervisor(supervisor),
		o.setClient(client),
		o.setItems(items),
		o.setNote(note),
		createdAtErr,
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. It applies the construction
// invariants and additionally accepts a persisted status and lifecycle timestamps.
func RestoreOrder(
	id kernel.ID,
	supervisor kernel.Snapshot,
	client kernel.Snapshot,
	items []Item,
	status Status,
	note string,
	createdAt time.Time,
	approvedAt *time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, supervisor, client, items, note, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.approvedAt = utcPtr(approvedAt)
	o.completedAt = utcPtr(completedAt)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

// Supervisor returns the snapshot of the supervisor who submitted the order.
func (o *Order) Supervisor() kernel.Snapshot {
	return o.supervisor
}

// Client returns the snapshot of the sector the order was placed for.
func (o *Order) Client() kernel.Snapshot {
	return o.client
}

// Items returns a copy of the line items in submission order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Note() string {
	return o.note
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApprovedAt returns the approval time, or nil if the order was never approved.
func (o *Order) ApprovedAt() *time.Time {
	return o.approvedAt
}

// CompletedAt returns the completion time, or nil if the order is not completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Approve moves a Pending order to Approved and fixes the approved quantity
// of every item.
//
// adjustments maps product IDs to approved quantities. Items without an entry
// are approved in full. Every quantity must lie in [0, requested]; a product
// that is not part of the order is rejected. On any error the order is left
// unchanged.
func (o *Order) Approve(adjustments map[kernel.ID]int, at time.Time) error {
	next, err := o.status.Approve()
	if err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("approvedAt")
	}

	approved := make([]Item, len(o.items))
	known := make(map[kernel.ID]struct{}, len(o.items))
	var itemErrs []error
	for i, item := range o.items {
		known[item.ProductID()] = struct{}{}

		quantity, ok := adjustments[item.ProductID()]
		if !ok {
			quantity = item.Quantity()
		}

		updated, itemErr := item.withApprovedQuantity(quantity)
		if itemErr != nil {
			itemErrs = append(itemErrs, itemErr)
			continue
		}
		approved[i] = updated
	}

	for productID := range adjustments {
		if _, ok := known[productID]; !ok {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				"approvedQuantity",
				fmt.Errorf("product %s is not part of order %s", productID, o.id),
			))
		}
	}

	if err = errors.Join(itemErrs...); err != nil {
		return err
	}

	at = at.UTC()
	o.items = approved
	o.status = next
	o.approvedAt = &at
	return nil
}

// Reject moves a Pending order to Rejected. Items are not touched.
func (o *Order) Reject() error {
	next, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Complete moves an Approved order to Completed.
func (o *Order) Complete(at time.Time) error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}

	at = at.UTC()
	o.status = next
	o.completedAt = &at
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSupervisor(supervisor kernel.Snapshot) error {
	if err := supervisor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supervisor", err)
	}
	o.supervisor = supervisor
	return nil
}

func (o *Order) setClient(client kernel.Snapshot) error {
	if err := client.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	o.client = client
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[kernel.ID]struct{}, len(items))
	for _, item := range items {
		if item.quantity <= 0 || item.product.IsZero() {
			return errs.NewValueIsInvalidError("items")
		}
		if _, dup := seen[item.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("product %s appears more than once", item.ProductID()))
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setNote(note string) error {
	note = strings.TrimSpace(note)
	if n := utf8.RuneCountInString(note); n > maxNoteLength {
		return errs.NewValueIsOutOfRangeError("note length", n, 0, maxNoteLength)
	}
	o.note = note
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
