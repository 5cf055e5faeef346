package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a product to a draft order.
// If the order already carries a line for the product, the quantities merge.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	tenantID    kernel.TenantID
	orderID     kernel.OrderID
	productID   kernel.ProductID
	productName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a product to an order.
// The identifiers and unit price must be constructed values; quantity and
// name rules are enforced by the aggregate.
func NewAddItemCommand(
	tenantID kernel.TenantID,
	orderID kernel.OrderID,
	productID kernel.ProductID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		productName: productName,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (c AddItemCommand) TenantID() kernel.TenantID {
	return c.tenantID
}

// OrderID returns the order to add the product to.
func (c AddItemCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ProductID returns the product being added.
func (c AddItemCommand) ProductID() kernel.ProductID {
	return c.productID
}

// ProductName returns the product's display name.
func (c AddItemCommand) ProductName() string {
	return c.productName
}

// Quantity returns the number of units to add.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the per-unit price.
func (c AddItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddItemCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *AddItemCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddItemCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}
