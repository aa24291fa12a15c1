// Package kafka publishes committed order events to a Kafka topic. Each
// event becomes one message keyed by the order id, so the events of one
// order stay in one partition and keep their order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dishly/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventMessage is the JSON value of a published event.
type EventMessage struct {
	Name       string    `json:"name"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	VendorID   string    `json:"vendor_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements ports.EventPublisher on top of a Kafka writer.
type Publisher struct {
	writer messageWriter
}

// NewWriter builds a writer for topic that hashes message keys to partitions.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish writes all events in one batch.
func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := toMessage(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d order events: %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(e order.Event) (kafka.Message, error) {
	payload, err := json.Marshal(EventMessage{
		Name:       string(e.Name),
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		VendorID:   e.VendorID.String(),
		From:       e.From,
		To:         e.To,
		Total:      e.Total.String(),
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:     []byte(e.OrderID.String()),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event", Value: []byte(e.Name)}},
		Time:    e.OccurredAt,
	}, nil
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, ...order.Event) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
