package commands

import (
	"context"
	"time"
)

// ConfirmRiderCollectionCommandHandler records a rider emptying the drop-off
// compartment. The compartment frees up for new orders and the rider's job
// claim on the order resets so a delivery job can claim it later.
type ConfirmRiderCollectionCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmRiderCollectionCommandHandler creates a handler for rider collection.
func NewConfirmRiderCollectionCommandHandler(uowFactory UoWFactory) ConfirmRiderCollectionCommandHandler {
	return ConfirmRiderCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider collection.
// Fails with order.ErrInvalidTransition when the order is not part of a
// pickup job or was never dropped off.
func (h ConfirmRiderCollectionCommandHandler) Handle(ctx context.Context, cmd ConfirmRiderCollectionCommand) error {
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

	if err = aggregate.MarkCollectedByRider(time.Now().UTC()); err != nil {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
