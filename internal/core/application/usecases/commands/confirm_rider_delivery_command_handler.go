package commands

import (
	"context"
	"log/slog"
	"time"

	"washcubes/internal/core/ports"
)

// ConfirmRiderDeliveryCommandHandler records a rider depositing a cleaned
// order at its collection site. Claims the scanned compartment, marks the
// order out for delivery, and notifies the customer that the order is
// waiting for them.
type ConfirmRiderDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewConfirmRiderDeliveryCommandHandler creates a handler for rider delivery.
func NewConfirmRiderDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) ConfirmRiderDeliveryCommandHandler {
	return ConfirmRiderDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "confirm_rider_delivery_handler"),
	}
}

// Handle processes the rider delivery.
// Fails with locker.ErrCompartmentOccupied when the scanned compartment is
// taken and with order.ErrInvalidTransition when the order is not part of a
// delivery job.
func (h ConfirmRiderDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmRiderDeliveryCommand) error {
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

	lockerRepo := uow.LockerRepository()
	site, err := lockerRepo.Get(ctx, aggregate.CollectionSiteID())
	if err != nil {
		return err
	}

	if err = site.Claim(cmd.CompartmentNumber()); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.MarkOutForDelivery(cmd.CompartmentNumber(), now); err != nil {
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
		Kind:        ports.EventOutForDelivery,
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID(),
		OccurredAt:  now,
	})

	return nil
}
