package commands

import (
	"context"
)

// ShipOrderCommandHandler handles marking orders as shipped. The aggregate
// only permits shipping a confirmed order.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipOrderCommandHandler creates a handler for shipping operations.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, ships it, and persists the change. The
// OrderShipped event reaches the outbox with the same commit.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if err = aggregate.Ship(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
