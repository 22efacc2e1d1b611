package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/config"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEvent is the wire format published to the orders topic.
type OrderEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"total_amount"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transaction_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type kafkaPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

func NewKafkaPublisher(cfg config.Kafka) *kafkaPublisher {
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
	})
}

func newPublisher(w MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{writer: w, now: time.Now}
}

// Publish keys messages by order id so every event of one order lands in
// the same partition.
func (p *kafkaPublisher) Publish(ctx context.Context, evt entities.OrderEvent) error {
	payload, err := json.Marshal(OrderEvent{
		EventID:       uuid.NewString(),
		Type:          string(evt.Type),
		OrderID:       evt.OrderID,
		Status:        string(evt.Status),
		TotalAmount:   money.Format(evt.Total),
		Currency:      money.Currency,
		TransactionID: evt.TransactionID,
		OccurredAt:    p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(evt.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", evt.Type, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
