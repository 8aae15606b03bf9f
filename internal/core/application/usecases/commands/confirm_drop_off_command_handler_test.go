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

func TestConfirmDropOffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	site := createTestSite(t, createTestCompartment(t, "L01", locker.SizeSmall))
	testOrder := createTestOrder(t, site.ID(), "L01")

	cmd, err := commands.NewConfirmDropOffCommand(testOrder.ID())
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

	handler := commands.NewConfirmDropOffCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.Stage().DropOff.Status)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmDropOffCommandHandler_Handle_AlreadyDroppedOff(t *testing.T) {
	ctx := t.Context()

	site := createTestSite(t, createTestCompartment(t, "L01", locker.SizeSmall))
	testOrder := createTestOrder(t, site.ID(), "L01")
	require.NoError(t, testOrder.ConfirmDropOff(time.Now()))

	cmd, err := commands.NewConfirmDropOffCommand(testOrder.ID())
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

	handler := commands.NewConfirmDropOffCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestConfirmDropOffCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ConfirmDropOffCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrConfirmDropOffCommandIsNotConstructed)
}
