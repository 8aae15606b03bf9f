package commands

import (
	"context"
)

// CancelOrderCommandHandler handles pre-drop-off order cancellation.
// Cancelling marks the order as an absorbing cancelled state and frees the
// compartment that was claimed for it, all in one transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Fails with order.ErrInvalidTransition once drop-off has been confirmed;
// the compartment stays occupied in that case.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	lockerRepo := uow.LockerRepository()
	site, err := lockerRepo.Get(ctx, aggregate.DropOffSiteID())
	if err != nil {
		return err
	}

	if err = site.Release(aggregate.DropOffCompartment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = lockerRepo.Update(ctx, site); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
