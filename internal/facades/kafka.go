package facades

import (
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
)

// writerBatchTimeout bounds how long a queued event waits before it is flushed.
const writerBatchTimeout = 10 * time.Millisecond

// NewKafkaWriter returns an asynchronous writer for pet events.
// WriteMessages only enqueues; delivery failures are reported through the completion log.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		BatchTimeout: writerBatchTimeout,
		Async:        true,
		Completion:   logDelivery,
	}
}

func logDelivery(msgs []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, m := range msgs {
		logger.Log.Warnw("pet event delivery failed", "topic", m.Topic, "key", string(m.Key), "error", err)
	}
}
