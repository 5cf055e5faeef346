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

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate := testOrder(t, tenantID, orderID, order.Draft)

	cmd, err := commands.NewConfirmOrderCommand(tenantID, orderID)
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

	h := commands.NewConfirmOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	assert.NotNil(t, aggregate.ConfirmedAt())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_EmptyOrderRefused(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate, err := order.NewOrder(orderID, tenantID, kernel.NewCustomerID(), "USD")
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(tenantID, orderID)
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

	h := commands.NewConfirmOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrEmptyOrder)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_AlreadyConfirmedRefused(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate := testOrder(t, tenantID, orderID, order.Confirmed)

	cmd, err := commands.NewConfirmOrderCommand(tenantID, orderID)
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

	h := commands.NewConfirmOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrIllegalTransition)
}
