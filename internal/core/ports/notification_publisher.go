package ports

import (
	"context"
	"time"

	"washcubes/internal/core/domain/model/kernel"
)

// Order event kinds published to the notification stream.
const (
	EventDiscrepancyRaised  = "order.discrepancy_raised"
	EventProcessingComplete = "order.processing_complete"
	EventOutForDelivery     = "order.out_for_delivery"
	EventOrderCompleted     = "order.completed"
	EventReservationExpired = "order.reservation_expired"
)

// OrderEvent is a customer-facing notification about an order's progress.
type OrderEvent struct {
	Kind        string
	OrderID     kernel.UUID
	OrderNumber string
	UserID      kernel.UUID
	OccurredAt  time.Time
}

// NotificationPublisher pushes order events to the notification stream that
// feeds customer push messages. Publishing is best effort: use cases fire
// events after commit and log failures rather than rolling back.
type NotificationPublisher interface {
	// PublishOrderEvent sends one event. Blocks until the broker accepts it
	// or ctx expires.
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
