package commands

import (
	"context"
	"time"
)

// ResolveOrderErrorCommandHandler closes a discrepancy on customer
// acceptance and resumes processing.
type ResolveOrderErrorCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResolveOrderErrorCommandHandler creates a handler for discrepancy acceptance.
func NewResolveOrderErrorCommandHandler(uowFactory OrderUoWFactory) ResolveOrderErrorCommandHandler {
	return ResolveOrderErrorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance.
// Fails with order.ErrInvalidTransition when no discrepancy is open.
func (h ResolveOrderErrorCommandHandler) Handle(ctx context.Context, cmd ResolveOrderErrorCommand) error {
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

	if err = aggregate.ResolveError(time.Now().UTC()); err != nil {
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
