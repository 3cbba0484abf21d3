package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"referral-guard/internal/observability"

	"github.com/segmentio/kafka-go"
)

const (
	// EventTypeReferralCreated is consumed by the fraud check workers
	EventTypeReferralCreated = "referral.created"

	// EventTypeSuspicionRecorded is published after a suspicious referral is stored
	EventTypeSuspicionRecorded = "fraud.suspicion.recorded"
)

// EventMessage represents an event message structure
type EventMessage struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	AccountID string                 `json:"account_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing events to Kafka
type Producer struct {
	writer messageWriter
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		Compression:  kafka.Snappy,
		BatchSize:    100,
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

func encodeMessage(event EventMessage) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	// Keyed by account so events for one account stay ordered
	return kafka.Message{
		Key:   []byte(event.AccountID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "account_id", Value: []byte(event.AccountID)},
		},
	}, nil
}

// PublishEvent publishes an event to Kafka
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	msg, err := encodeMessage(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// PublishEvents publishes multiple events in one batch. Events that fail to
// encode are logged and left out of the batch.
func (p *Producer) PublishEvents(ctx context.Context, events []EventMessage) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := encodeMessage(event)
		if err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to marshal event %s", event.ID), err)
			continue
		}
		messages = append(messages, msg)
	}
	if len(messages) == 0 {
		return fmt.Errorf("failed to marshal any of %d events", len(events))
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(ctx, "failed to write messages to kafka", err)
		return fmt.Errorf("failed to write messages to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published %d events to kafka", len(messages)))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
