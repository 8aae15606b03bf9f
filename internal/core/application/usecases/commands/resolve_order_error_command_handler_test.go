package commands_test

import (
	"testing"
	"time"

	"washcubes/internal/core/application/usecases/commands"
	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"
	"washcubes/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// createDisputedOrder builds an order with an open discrepancy raised by an
// operator edit.
func createDisputedOrder(t *testing.T, siteID kernel.UUID, compartment string) *order.Order {
	t.Helper()
	now := time.Now()
	o := createDroppedOffOrder(t, siteID, compartment)
	require.NoError(t, o.MarkSelectedByRider())
	require.NoError(t, o.MarkCollectedByRider(now))

	item, err := order.NewItem("Shirt", "per piece", 4.50, 3)
	require.NoError(t, err)
	require.NoError(t, o.OperatorEdit([]order.Item{item}, []string{"https://pics/1.jpg"}, 13.50, now))
	return o
}

func TestResolveOrderErrorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	site := createTestSite(t, createTestCompartment(t, "L01", locker.SizeSmall))
	testOrder := createDisputedOrder(t, site.ID(), "L01")

	cmd, err := commands.NewResolveOrderErrorCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveOrderErrorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, testOrder.Stage().OrderError.Status)
	assert.True(t, testOrder.Stage().OrderError.UserAccepted)
	assert.True(t, testOrder.Stage().InProgress.Processing)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResolveOrderErrorCommandHandler_Handle_NoOpenDiscrepancy(t *testing.T) {
	ctx := t.Context()

	site := createTestSite(t, createTestCompartment(t, "L01", locker.SizeSmall))
	testOrder := createDroppedOffOrder(t, site.ID(), "L01")

	cmd, err := commands.NewResolveOrderErrorCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveOrderErrorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}
