package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Opens a draft order for the customer and adds the requested initial lines
// before anything is persisted, so a bad line rejects the whole request.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, tenantID, customerID, "USD", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the aggregate with its initial lines, persists it, and commits.
// The OrderCreated and OrderItemAdded events reach the outbox with the same
// commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.TenantID(), cmd.CustomerID(), cmd.Currency())
	if err != nil {
		return err
	}

	for _, item := range cmd.Items() {
		if err = aggregate.AddItem(item.ProductID, item.ProductName, item.Quantity, item.UnitPrice); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
