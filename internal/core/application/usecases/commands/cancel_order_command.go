package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order before it
// ships, recording the reason.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.TenantID
	orderID  kernel.OrderID
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// A reason is required; it ends up on the order and in the OrderCancelled
// event.
func NewCancelOrderCommand(tenantID kernel.TenantID, orderID kernel.OrderID, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (c CancelOrderCommand) TenantID() kernel.TenantID {
	return c.tenantID
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Reason returns why the order is being cancelled.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
