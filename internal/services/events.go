package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// EventPublisher publishes domain events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaEventPublisher publishes events as JSON to Kafka, keyed by user id.
type KafkaEventPublisher struct {
	writer KafkaWriter
}

// NewKafkaEventPublisher creates a publisher. A nil writer disables publishing.
func NewKafkaEventPublisher(writer KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish writes the event to Kafka. Failures are logged, never returned.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event models.Event) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(event.UserID)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type, "user_id", event.UserID)
	}
}

// Close closes the underlying writer, if any.
func (p *KafkaEventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// publish builds an event and hands it to p. A nil publisher is allowed.
func publish(ctx context.Context, p EventPublisher, eventType string, userID int, payload any) {
	if p == nil {
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Log.Errorw("failed to marshal event payload", "type", eventType, "error", err)
			return
		}
		event.Payload = raw
	}

	p.Publish(ctx, event)
}
