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

func TestRemoveItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate := testOrder(t, tenantID, orderID, order.Draft)
	productID := aggregate.Items()[0].ProductID()

	cmd, err := commands.NewRemoveItemCommand(tenantID, orderID, productID)
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

	h := commands.NewRemoveItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Empty(t, aggregate.Items())
	assert.True(t, aggregate.TotalAmount().IsZero())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle_AbsentProductStillCommits(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate := testOrder(t, tenantID, orderID, order.Draft)

	cmd, err := commands.NewRemoveItemCommand(tenantID, orderID, kernel.NewProductID())
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

	h := commands.NewRemoveItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, aggregate.Items(), 1)
}

func TestRemoveItemCommandHandler_Handle_ShippedOrderRefused(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewTenantID()
	orderID := kernel.NewOrderID()
	aggregate := testOrder(t, tenantID, orderID, order.Shipped)
	productID := aggregate.Items()[0].ProductID()

	cmd, err := commands.NewRemoveItemCommand(tenantID, orderID, productID)
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

	h := commands.NewRemoveItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderNotEditable)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
