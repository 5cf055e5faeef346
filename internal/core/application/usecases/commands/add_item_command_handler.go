package commands

import (
	"context"
)

// AddItemCommandHandler handles adding a product to a draft order.
// The aggregate enforces the Draft-only editing rule, currency discipline,
// and the merge of duplicate product lines.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for add-item operations.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, adds the line, and persists the change. The
// OrderItemAdded event reaches the outbox with the same commit.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.ProductID(), cmd.ProductName(), cmd.Quantity(), cmd.UnitPrice()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
