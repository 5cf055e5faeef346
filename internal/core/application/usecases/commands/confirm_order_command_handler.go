package commands

import (
	"context"
)

// ConfirmOrderCommandHandler handles order confirmation. The aggregate
// refuses to confirm an empty order or one that already left Draft.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for confirmation operations.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, confirms it, and persists the change. The
// OrderConfirmed event reaches the outbox with the same commit.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
