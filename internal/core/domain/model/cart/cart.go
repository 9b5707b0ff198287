// Package cart holds the supervisor's cart: the line items assembled before an
// order is submitted.
package cart

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// Line is one product in the cart.
type Line struct {
	ProductID   kernel.ID
	ProductName string
	Quantity    int
}

// Cart is an ordered set of lines keyed by product. The zero value is an empty cart.
// A Cart is not safe for concurrent use; stores serialize access per owner.
type Cart struct {
	lines []Line
}

// Restore rebuilds a cart from stored lines. Lines with non-positive quantities are dropped.
func Restore(lines []Line) (*Cart, error) {
	c := &Cart{}
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		if err := line.ProductID.Validate(); err != nil {
			return nil, err
		}
		if c.indexOf(line.ProductID) >= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"cart", fmt.Errorf("product %s appears more than once", line.ProductID))
		}
		c.lines = append(c.lines, line)
	}
	return c, nil
}

// Add inserts the product with quantity 1, or increments it by 1 when present.
func (c *Cart) Add(productID kernel.ID, productName string) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}

	c.lines = append(c.lines, Line{ProductID: productID, ProductName: productName, Quantity: 1})
	return nil
}

// SetQuantity replaces the quantity of a line. Zero or below removes the line.
func (c *Cart) SetQuantity(productID kernel.ID, quantity int) error {
	i := c.indexOf(productID)
	if quantity <= 0 {
		if i >= 0 {
			c.removeAt(i)
		}
		return nil
	}
	if i < 0 {
		return errs.NewObjectNotFoundError("productId", productID)
	}

	c.lines[i].Quantity = quantity
	return nil
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID kernel.ID) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Quantity returns the quantity for productID, or 0 when absent.
func (c *Cart) Quantity(productID kernel.ID) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// OrderItems converts the lines into order items, verbatim.
func (c *Cart) OrderItems() ([]order.Item, error) {
	if c.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart items")
	}

	items := make([]order.Item, 0, len(c.lines))
	for _, line := range c.lines {
		item, err := order.NewItem(line.ProductID, line.ProductName, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Cart) indexOf(productID kernel.ID) int {
	for i, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
