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

// createTestOrder builds an order dropped at the given site and compartment.
func createTestOrder(t *testing.T, siteID kernel.UUID, compartment string) *order.Order {
	t.Helper()
	item, err := order.NewItem("Shirt", "per piece", 4.50, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "123456AB3D", kernel.NewUUID(), kernel.NewUUID(),
		siteID, compartment, kernel.NewUUID(), []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	compartment := createTestCompartment(t, "L01", locker.SizeSmall)
	site := createTestSite(t, compartment)
	require.NoError(t, compartment.Claim())

	testOrder := createTestOrder(t, site.ID(), "L01")

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	lockerRepo := new(MockLockerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("Get", ctx, site.ID()).Return(site, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		lockerRepo.On("Update", ctx, site).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.Cancelled())
	assert.True(t, compartment.IsAvailable())
	orderRepo.AssertExpectations(t)
	lockerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AfterDropOff(t *testing.T) {
	ctx := t.Context()

	compartment := createTestCompartment(t, "L01", locker.SizeSmall)
	site := createTestSite(t, compartment)
	require.NoError(t, compartment.Claim())

	testOrder := createTestOrder(t, site.ID(), "L01")
	require.NoError(t, testOrder.ConfirmDropOff(time.Now()))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.False(t, testOrder.Cancelled())
	assert.False(t, compartment.IsAvailable())
	uow.AssertNotCalled(t, "Commit", ctx)
}
