package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/lumiere-beauty/storefront-api/internal/model"
)

const (
	TypeOrderCreated = "order.created"
	TypeOrderPaid    = "order.paid"
)

// OrderEvent is the JSON payload published for order lifecycle changes.
// Downstream consumers (fulfilment, analytics) key on OrderID.
type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       uint      `json:"order_id"`
	UserID        uint      `json:"user_id"`
	Total         string    `json:"total"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	Timestamp     time.Time `json:"timestamp"`
}

// Producer publishes order events. Publishing is best-effort: callers log
// failures and move on, the storefront never blocks on the broker.
type Producer interface {
	PublishOrderCreated(order *model.Order) error
	PublishOrderPaid(order *model.Order) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) Producer {
	return &kafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
	}
}

func (p *kafkaProducer) PublishOrderCreated(order *model.Order) error {
	return p.publish(TypeOrderCreated, order)
}

func (p *kafkaProducer) PublishOrderPaid(order *model.Order) error {
	return p.publish(TypeOrderPaid, order)
}

func (p *kafkaProducer) publish(eventType string, order *model.Order) error {
	payload, err := json.Marshal(&OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Total:         order.Total.StringFixed(2),
		Currency:      order.Currency,
		PaymentMethod: order.PaymentMethod,
		Timestamp:     time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.ID), 10)),
		Value: payload,
		Time:  time.Now(),
	})
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

// NewNoopProducer is used when no brokers are configured (local dev, tests).
func NewNoopProducer() Producer {
	return noopProducer{}
}

type noopProducer struct{}

func (noopProducer) PublishOrderCreated(*model.Order) error { return nil }
func (noopProducer) PublishOrderPaid(*model.Order) error    { return nil }
func (noopProducer) Close() error                           { return nil }
