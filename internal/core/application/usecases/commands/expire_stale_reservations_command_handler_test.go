package commands_test

import (
	"testing"
	"time"

	"washcubes/internal/core/application/usecases/commands"
	"washcubes/internal/core/domain/model/locker"
	"washcubes/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewExpireStaleReservationsCommand(t *testing.T) {
	t.Run("should create command with positive ttl", func(t *testing.T) {
		cmd, err := commands.NewExpireStaleReservationsCommand(30 * time.Minute)

		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cmd.TTL())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should return error with zero ttl", func(t *testing.T) {
		_, err := commands.NewExpireStaleReservationsCommand(0)

		require.ErrorIs(t, err, commands.ErrTTLIsInvalid)
	})

	t.Run("should return error for zero value command", func(t *testing.T) {
		var cmd commands.ExpireStaleReservationsCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrExpireStaleReservationsCommandIsNotConstructed)
	})
}

func TestExpireStaleReservationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	compartment := createTestCompartment(t, "L01", locker.SizeSmall)
	site := createTestSite(t, compartment)
	require.NoError(t, compartment.Claim())

	staleOrder := createTestOrder(t, site.ID(), "L01")

	cmd, err := commands.NewExpireStaleReservationsCommand(30 * time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	lockerRepo := new(MockLockerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStaleUnconfirmed", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{staleOrder}, nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("Get", ctx, site.ID()).Return(site, nil).Once(),
		lockerRepo.On("Update", ctx, site).Return(nil).Once(),
		orderRepo.On("Update", ctx, staleOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	handler := commands.NewExpireStaleReservationsCommandHandler(factory, publisher, discardLogger())
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.True(t, staleOrder.Cancelled())
	assert.True(t, compartment.IsAvailable())
	orderRepo.AssertExpectations(t)
	lockerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireStaleReservationsCommandHandler_Handle_SkipsUncancellable(t *testing.T) {
	ctx := t.Context()

	compartment := createTestCompartment(t, "L01", locker.SizeSmall)
	site := createTestSite(t, compartment)
	require.NoError(t, compartment.Claim())

	// Dropped-off orders cannot be cancelled and must survive the sweep.
	droppedOff := createTestOrder(t, site.ID(), "L01")
	require.NoError(t, droppedOff.ConfirmDropOff(time.Now()))

	cmd, err := commands.NewExpireStaleReservationsCommand(30 * time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	lockerRepo := new(MockLockerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStaleUnconfirmed", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{droppedOff}, nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	handler := commands.NewExpireStaleReservationsCommandHandler(factory, publisher, discardLogger())
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, expired)
	assert.False(t, droppedOff.Cancelled())
	assert.False(t, compartment.IsAvailable())
	lockerRepo.AssertNotCalled(t, "Update", ctx, site)
	publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}
