package commands

import (
	"context"
	"log/slog"
	"time"

	"washcubes/internal/core/ports"
)

// ConfirmCollectionCommandHandler completes an order on customer collection
// and frees the collection compartment. Compartment release is idempotent,
// so replaying the confirmation after a partial failure is safe.
type ConfirmCollectionCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewConfirmCollectionCommandHandler creates a handler for customer collection.
func NewConfirmCollectionCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) ConfirmCollectionCommandHandler {
	return ConfirmCollectionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "confirm_collection_handler"),
	}
}

// Handle processes the collection confirmation.
// Fails with order.ErrInvalidTransition before the order is out for delivery.
func (h ConfirmCollectionCommandHandler) Handle(ctx context.Context, cmd ConfirmCollectionCommand) error {
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
	if err = aggregate.ConfirmCollection(now); err != nil {
		return err
	}

	lockerRepo := uow.LockerRepository()
	site, err := lockerRepo.Get(ctx, aggregate.CollectionSiteID())
	if err != nil {
		return err
	}

	if err = site.Release(aggregate.CollectionCompartment()); err != nil {
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

	notifyAsync(h.logger, h.publisher, ports.OrderEvent{
		Kind:        ports.EventOrderCompleted,
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID(),
		OccurredAt:  now,
	})

	return nil
}
