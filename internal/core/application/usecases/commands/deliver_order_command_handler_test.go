package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate := testOrder(t, tenantID, orderID, order.Shipped)

	cmd, err := commands.NewDeliverOrderCommand(tenantID, orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, aggregate.Status())
	assert.NotNil(t, aggregate.DeliveredAt())
}

func TestDeliverOrderCommandHandler_Handle_ConfirmedRefused(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate := testOrder(t, tenantID, orderID, order.Confirmed)

	cmd, err := commands.NewDeliverOrderCommand(tenantID, orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, orderID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrIllegalTransition)
}
