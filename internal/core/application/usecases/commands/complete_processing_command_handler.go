package commands

import (
	"context"
	"log/slog"
	"time"

	"washcubes/internal/core/ports"
)

// CompleteProcessingCommandHandler marks laundering finished and notifies
// the customer that the order is heading back.
type CompleteProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewCompleteProcessingCommandHandler creates a handler for processing completion.
func NewCompleteProcessingCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CompleteProcessingCommandHandler {
	return CompleteProcessingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "complete_processing_handler"),
	}
}

// Handle processes the completion.
// Fails with order.ErrInvalidTransition while the order is not processing or
// a discrepancy is open.
func (h CompleteProcessingCommandHandler) Handle(ctx context.Context, cmd CompleteProcessingCommand) error {
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

	now := time.Now().UTC()
	if err = aggregate.ConfirmProcessingComplete(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyAsync(h.logger, h.publisher, ports.OrderEvent{
		Kind:        ports.EventProcessingComplete,
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID(),
		OccurredAt:  now,
	})

	return nil
}
