// Package kafka publishes order domain events to a Kafka topic.
//
// Each event becomes one JSON message keyed by the order id, so all events of
// one order land on the same partition and keep their order.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

var ErrWriterIsRequired = errors.New("kafka writer is required")

// messageWriter is the part of *kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderEventMessage is the payload written for every order event.
type OrderEventMessage struct {
	EventID        string    `json:"eventId"`
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	Status         string    `json:"status,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// OrderEventPublisher implements ports.EventPublisher on top of kafka-go.
type OrderEventPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher writing to topic on the given brokers.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) *OrderEventPublisher {
	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafkago.RequireOne,
		// Events are written right after a commit, inside the request.
		BatchTimeout: 10 * time.Millisecond,
	}
	p, _ := newOrderEventPublisher(writer, logger)
	return p
}

func newOrderEventPublisher(writer messageWriter, logger *slog.Logger) (*OrderEventPublisher, error) {
	if writer == nil {
		return nil, ErrWriterIsRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderEventPublisher{
		writer: writer,
		logger: logger.With("component", "order_event_publisher"),
	}, nil
}

// Publish writes all events in one batch.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(toMessage(event))
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", event.Type, err)
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(event.OrderID.String()),
			Value: payload,
			Time:  event.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write order events: %w", err)
	}

	p.logger.DebugContext(ctx, "order events published", "count", len(msgs))
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(event order.Event) OrderEventMessage {
	msg := OrderEventMessage{
		EventID:     event.ID.String(),
		Type:        string(event.Type),
		OrderID:     event.OrderID.String(),
		OrderNumber: event.OrderNumber,
		OccurredAt:  event.OccurredAt,
	}
	if event.Type == order.EventStatusChanged {
		msg.PreviousStatus = event.PreviousStatus.String()
		msg.Status = event.Status.String()
	}
	return msg
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ...order.Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
