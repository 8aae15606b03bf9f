package commands

import (
	"context"
	"time"
)

// RejectOrderErrorCommandHandler records a customer rejecting the revised
// order. The discrepancy stays open and the order awaits manual resolution.
type RejectOrderErrorCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderErrorCommandHandler creates a handler for discrepancy rejection.
func NewRejectOrderErrorCommandHandler(uowFactory OrderUoWFactory) RejectOrderErrorCommandHandler {
	return RejectOrderErrorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection.
// Fails with order.ErrInvalidTransition when no discrepancy is open.
func (h RejectOrderErrorCommandHandler) Handle(ctx context.Context, cmd RejectOrderErrorCommand) error {
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

	if err = aggregate.RejectError(time.Now().UTC()); err != nil {
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
