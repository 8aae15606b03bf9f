package commands

import (
	"context"
	"log/slog"
	"time"

	"washcubes/internal/core/ports"
)

// ExpireStaleReservationsCommandHandler cancels orders whose drop-off never
// happened within the TTL and releases the compartments they held. Runs on a
// schedule; one stuck order must not block the rest of the sweep, so
// per-order failures are logged and skipped.
type ExpireStaleReservationsCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewExpireStaleReservationsCommandHandler creates a handler for the expiry sweep.
func NewExpireStaleReservationsCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) ExpireStaleReservationsCommandHandler {
	return ExpireStaleReservationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "expire_stale_reservations_handler"),
	}
}

// Handle processes one expiry sweep. Returns the number of expired orders.
func (h ExpireStaleReservationsCommandHandler) Handle(ctx context.Context, cmd ExpireStaleReservationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	cutoff := now.Add(-cmd.TTL())

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetStaleUnconfirmed(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	lockerRepo := uow.LockerRepository()
	expired := 0
	events := make([]ports.OrderEvent, 0, len(stale))

	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			h.logger.Warn("skipping stale order",
				"orderNumber", aggregate.OrderNumber(), "error", err)
			continue
		}

		site, err := lockerRepo.Get(ctx, aggregate.DropOffSiteID())
		if err != nil {
			return 0, err
		}
		if err = site.Release(aggregate.DropOffCompartment()); err != nil {
			return 0, err
		}
		if err = lockerRepo.Update(ctx, site); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}

		events = append(events, ports.OrderEvent{
			Kind:        ports.EventReservationExpired,
			OrderID:     aggregate.ID(),
			OrderNumber: aggregate.OrderNumber(),
			UserID:      aggregate.UserID(),
			OccurredAt:  now,
		})
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, event := range events {
		notifyAsync(h.logger, h.publisher, event)
	}

	return expired, nil
}
