package order

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// Item is one product line of an order. The product name is a snapshot taken
// when the order was submitted.
type Item struct {
	product          kernel.Snapshot
	quantity         int
	approvedQuantity *int
}

// NewItem creates a line item with a requested quantity and no approved quantity.
func NewItem(productID kernel.ID, productName string, quantity int) (Item, error) {
	product, err := kernel.NewSnapshot(productID, productName)
	if err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{product: product, quantity: quantity}, nil
}

// RestoreItem rebuilds a persisted line item, including its approved quantity.
func RestoreItem(productID kernel.ID, productName string, quantity int, approvedQuantity *int) (Item, error) {
	item, err := NewItem(productID, productName, quantity)
	if err != nil {
		return Item{}, err
	}
	if approvedQuantity == nil {
		return item, nil
	}

	return item.withApprovedQuantity(*approvedQuantity)
}

func (i Item) ProductID() kernel.ID {
	return i.product.ID()
}

func (i Item) ProductName() string {
	return i.product.Name()
}

// Quantity returns the requested quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// ApprovedQuantity returns the approved quantity and whether it has been set.
func (i Item) ApprovedQuantity() (int, bool) {
	if i.approvedQuantity == nil {
		return 0, false
	}
	return *i.approvedQuantity, true
}

// EffectiveApprovedQuantity returns the approved quantity, falling back to the
// requested quantity while the item has not been through approval.
func (i Item) EffectiveApprovedQuantity() int {
	if i.approvedQuantity == nil {
		return i.quantity
	}
	return *i.approvedQuantity
}

func (i Item) withApprovedQuantity(approved int) (Item, error) {
	if approved < 0 || approved > i.quantity {
		return Item{}, errs.NewValueIsOutOfRangeError(
			"approvedQuantity of "+i.product.ID().String(), approved, 0, i.quantity)
	}

	i.approvedQuantity = &approved
	return i, nil
}
