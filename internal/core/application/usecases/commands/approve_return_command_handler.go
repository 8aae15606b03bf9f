package commands

import (
	"context"
	"time"
)

// ApproveReturnCommandHandler closes a rejected discrepancy by sending the
// order back unprocessed. Enters the processing-complete state so the normal
// return transport leg picks the order up.
type ApproveReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveReturnCommandHandler creates a handler for return approval.
func NewApproveReturnCommandHandler(uowFactory OrderUoWFactory) ApproveReturnCommandHandler {
	return ApproveReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return approval.
// Fails with order.ErrInvalidTransition when no discrepancy is open.
func (h ApproveReturnCommandHandler) Handle(ctx context.Context, cmd ApproveReturnCommand) error {
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

	if err = aggregate.ApproveReturn(time.Now().UTC()); err != nil {
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
