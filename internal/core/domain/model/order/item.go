package order

import (
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// maxProductNameLength bounds the product name column in persistence.
const maxProductNameLength = 255

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem factory method.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line of an Order: a product, the quantity ordered, and the
// unit price captured at the moment the line was added. The line total is
// derived and always equals unit price times quantity.
//
// OrderItem is an entity owned by the Order aggregate. It is never persisted
// or modified outside its order; all mutation goes through the aggregate,
// which enforces the Draft-only editing rule.
type OrderItem struct {
	// id is the unique identifier for the line item
	id kernel.OrderItemID

	// productID references the ordered product
	productID kernel.ProductID

	// productName is the display name captured at ordering time
	productName string

	// quantity is the number of units (must be positive)
	quantity int

	// unitPrice is the price per unit captured at ordering time
	unitPrice kernel.Money

	// totalPrice is derived: unitPrice * quantity
	totalPrice kernel.Money

	// isConstructed ensures the item was created via NewOrderItem
	isConstructed bool
}

// NewOrderItem creates a new OrderItem instance with validation. This is the
// only way to create a valid OrderItem.
//
// Parameters:
//   - id: Unique identifier for the line item
//   - productID: The ordered product
//   - productName: Display name, non-empty and at most 255 characters
//   - quantity: Number of units, must be positive
//   - unitPrice: Price per unit, must be a constructed Money value
//
// The line total is computed from quantity and unit price and kept in sync
// by every later quantity change.
func NewOrderItem(
	id kernel.OrderItemID,
	productID kernel.ProductID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (*OrderItem, error) {
	item := &OrderItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	if err := item.recalculateTotalPrice(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the OrderItem instance was properly constructed through
// NewOrderItem.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two line items by their unique identifiers.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (i *OrderItem) ID() kernel.OrderItemID {
	return i.id
}

// ProductID returns the ordered product's identifier.
func (i *OrderItem) ProductID() kernel.ProductID {
	return i.productID
}

// ProductName returns the product name captured at ordering time.
func (i *OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at ordering time.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the derived line total (unit price times quantity).
func (i *OrderItem) TotalPrice() kernel.Money {
	return i.totalPrice
}

// UpdateQuantity replaces the quantity and recomputes the line total.
// The new quantity must be positive. On error the item is unchanged.
func (i *OrderItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	newTotal, err := i.unitPrice.Multiply(quantity)
	if err != nil {
		return err
	}

	i.quantity = quantity
	i.totalPrice = newTotal
	return nil
}

// setID validates and sets the line item's unique identifier.
// This is a private method used only during construction.
func (i *OrderItem) setID(id kernel.OrderItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setProductID validates and sets the product reference.
// This is a private method used only during construction.
func (i *OrderItem) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

// setProductName validates and sets the product name.
// This is a private method used only during construction.
func (i *OrderItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	if len(productName) > maxProductNameLength {
		return errs.NewValueIsOutOfRangeError("productName length", len(productName), 1, maxProductNameLength)
	}
	i.productName = productName
	return nil
}

// setQuantity validates and sets the quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the unit price.
// This is a private method used only during construction.
func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

// recalculateTotalPrice refreshes the derived line total.
func (i *OrderItem) recalculateTotalPrice() error {
	total, err := i.unitPrice.Multiply(i.quantity)
	if err != nil {
		return err
	}
	i.totalPrice = total
	return nil
}
