package commands

import (
	"context"
)

// RemoveItemCommandHandler handles removing a product's line from a draft
// order. Removal is idempotent; the handler persists and commits either way
// so repeated requests behave identically.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for remove-item operations.
func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, removes the line if present, and persists the
// change. When a line was removed, the OrderItemRemoved event reaches the
// outbox with the same commit.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	if err = aggregate.RemoveItem(cmd.ProductID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
