package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to confirm a draft order,
// freezing its item list.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.TenantID
	orderID  kernel.OrderID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
func NewConfirmOrderCommand(tenantID kernel.TenantID, orderID kernel.OrderID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setOrderID(orderID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (c ConfirmOrderCommand) TenantID() kernel.TenantID {
	return c.tenantID
}

// OrderID returns the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ConfirmOrderCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
