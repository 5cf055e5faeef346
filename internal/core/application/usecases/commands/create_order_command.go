package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput carries one requested line of a new order. Detailed
// validation (positive quantity, name length, currency discipline) is
// enforced by the aggregate when the line is added.
type OrderItemInput struct {
	ProductID   kernel.ProductID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

// CreateOrderCommand represents a request to open a new draft order for a
// customer, optionally seeded with initial line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewOrderID(), tenantID, customerID, "USD", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	tenantID   kernel.TenantID
	customerID kernel.CustomerID
	currency   string
	items      []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new draft order.
// Validates the identifiers and requires a currency; the item list may be
// empty, the order then starts without lines.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	tenantID kernel.TenantID,
	customerID kernel.CustomerID,
	currency string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
		cmd.setCustomerID(customerID),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.items = make([]OrderItemInput, len(items))
	copy(cmd.items, items)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// TenantID returns the tenant the order belongs to.
func (c CreateOrderCommand) TenantID() kernel.TenantID {
	return c.tenantID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

// Currency returns the currency code for all amounts on the order.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

// Items returns the requested initial lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	items := make([]OrderItemInput, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	c.currency = currency
	return nil
}
