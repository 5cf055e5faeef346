package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove a product's line from a
// draft order. Removing a product the order does not carry succeeds without
// effect.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	tenantID  kernel.TenantID
	orderID   kernel.OrderID
	productID kernel.ProductID

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a product from an order.
func NewRemoveItemCommand(
	tenantID kernel.TenantID,
	orderID kernel.OrderID,
	productID kernel.ProductID,
) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (c RemoveItemCommand) TenantID() kernel.TenantID {
	return c.tenantID
}

// OrderID returns the order to remove the product from.
func (c RemoveItemCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ProductID returns the product being removed.
func (c RemoveItemCommand) ProductID() kernel.ProductID {
	return c.productID
}

func (c *RemoveItemCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *RemoveItemCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
