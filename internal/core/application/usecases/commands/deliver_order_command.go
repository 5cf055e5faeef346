package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a request to mark a shipped order as
// delivered, closing its lifecycle.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.TenantID
	orderID  kernel.OrderID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver an order.
func NewDeliverOrderCommand(tenantID kernel.TenantID, orderID kernel.OrderID) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setOrderID(orderID),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (c DeliverOrderCommand) TenantID() kernel.TenantID {
	return c.tenantID
}

// OrderID returns the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *DeliverOrderCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
