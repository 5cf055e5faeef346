package commands

import (
	"context"
)

// DeliverOrderCommandHandler handles marking orders as delivered. The
// aggregate only permits delivering a shipped order; Delivered is terminal.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivery operations.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, delivers it, and persists the change. The
// OrderDelivered event reaches the outbox with the same commit.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if err = aggregate.Deliver(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
