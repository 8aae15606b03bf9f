package commands

import (
	"context"
	"log/slog"
	"time"

	"washcubes/internal/core/ports"
)

// EditOrderCommandHandler applies an operator correction to an order.
// Re-prices the revised items from the service catalog, preserves the prior
// item list as an audit copy, opens the discrepancy stage with the proof
// pictures, and notifies the customer after the transaction commits.
type EditOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewEditOrderCommandHandler creates a handler for operator corrections.
func NewEditOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "edit_order_handler"),
	}
}

// Handle processes the operator edit.
// Fails with order.ErrInvalidTransition before drop-off. The customer
// notification is fire-and-forget and never rolls the edit back.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	svc, err := uow.ServiceRepository().Get(ctx, aggregate.ServiceID())
	if err != nil {
		return err
	}

	items, err := priceItems(svc.FindItem, cmd.Items())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.OperatorEdit(items, cmd.ProofPicURLs(), cmd.FinalPrice(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAsync(h.logger, h.publisher, ports.OrderEvent{
		Kind:        ports.EventDiscrepancyRaised,
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID(),
		OccurredAt:  now,
	})

	return nil
}
