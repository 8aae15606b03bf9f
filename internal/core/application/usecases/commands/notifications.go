package commands

import (
	"context"
	"log/slog"
	"time"

	"washcubes/internal/core/ports"
)

const notifyTimeout = 5 * time.Second

// notifyAsync publishes an order event without blocking the caller.
// Notification delivery is fire-and-forget: it runs after the transaction
// committed, and a broker failure is logged, never propagated, so it cannot
// undo the stage transition that triggered it.
func notifyAsync(logger *slog.Logger, publisher ports.NotificationPublisher, event ports.OrderEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := publisher.PublishOrderEvent(ctx, event); err != nil {
			logger.Error("failed to publish order event",
				"kind", event.Kind,
				"orderNumber", event.OrderNumber,
				"error", err)
		}
	}()
}
