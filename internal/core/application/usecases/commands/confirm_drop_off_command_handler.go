package commands

import (
	"context"
	"time"
)

// ConfirmDropOffCommandHandler stamps the drop-off checkpoint on an order.
// The compartment was already claimed at allocation time, so this transition
// only touches the order aggregate.
type ConfirmDropOffCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDropOffCommandHandler creates a handler for drop-off confirmation.
func NewConfirmDropOffCommandHandler(uowFactory OrderUoWFactory) ConfirmDropOffCommandHandler {
	return ConfirmDropOffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drop-off confirmation.
// Fails with order.ErrInvalidTransition on a repeated or cancelled drop-off.
func (h ConfirmDropOffCommandHandler) Handle(ctx context.Context, cmd ConfirmDropOffCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmDropOff(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
