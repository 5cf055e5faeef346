package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a request to mark a confirmed order as shipped.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.TenantID
	orderID  kernel.OrderID

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
func NewShipOrderCommand(tenantID kernel.TenantID, orderID kernel.OrderID) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setOrderID(orderID),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (c ShipOrderCommand) TenantID() kernel.TenantID {
	return c.tenantID
}

// OrderID returns the order to ship.
func (c ShipOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ShipOrderCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
