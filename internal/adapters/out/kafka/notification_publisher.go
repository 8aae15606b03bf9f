// Package kafka publishes order lifecycle events to a Kafka topic for the
// notification pipeline. The service only produces; delivery to push or
// email channels is the consumer's concern.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"washcubes/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationPublisher implements ports.NotificationPublisher on top of a
// Kafka topic. Events are keyed by user id so one customer's notifications
// stay ordered within a partition.
type NotificationPublisher struct {
	writer messageWriter
}

// NewWriter creates a kafka.Writer for the notification topic.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// NewNotificationPublisher creates a publisher over the given writer.
func NewNotificationPublisher(writer messageWriter) *NotificationPublisher {
	return &NotificationPublisher{writer: writer}
}

// PublishOrderEvent serializes the event as JSON and writes it to the topic.
func (p *NotificationPublisher) PublishOrderEvent(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(orderEventMessage{
		Kind:        event.Kind,
		OrderID:     event.OrderID.String(),
		OrderNumber: event.OrderNumber,
		UserID:      event.UserID.String(),
		OccurredAt:  event.OccurredAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: payload,
	})
}

// Close closes the underlying Kafka writer.
func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}

// orderEventMessage is the wire form of an order event.
type orderEventMessage struct {
	Kind        string `json:"kind"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	UserID      string `json:"userId"`
	OccurredAt  string `json:"occurredAt"`
}
