package facades

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// PetEventsKafkaFacade publishes pet lifecycle events to Kafka.
type PetEventsKafkaFacade struct {
	writer KafkaWriter
}

// NewPetEventsKafkaFacade creates a new facade. A nil writer disables publishing.
func NewPetEventsKafkaFacade(writer KafkaWriter) *PetEventsKafkaFacade {
	return &PetEventsKafkaFacade{writer: writer}
}

// Publish writes the event keyed by pet id, so events of one pet stay ordered within a partition.
func (f *PetEventsKafkaFacade) Publish(ctx context.Context, event models.PetEvent) error {
	if f.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.PetID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish pet event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		return err
	}

	logger.Log.Infow("pet event queued for Kafka", "event_id", event.EventID, "type", event.Type, "pet_id", event.PetID)
	return nil
}
