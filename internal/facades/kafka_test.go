package facades

import (
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"k1:9092", "k2:9092"}, "pet-events")
	defer w.Close()

	assert.Equal(t, "pet-events", w.Topic)
	assert.Equal(t, "k1:9092,k2:9092", w.Addr.String())
	assert.True(t, w.Async, "mutations must not wait on the broker")
	assert.Equal(t, 1, w.BatchSize)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)

	require.NotNil(t, w.Completion)
	assert.NotPanics(t, func() {
		w.Completion([]kafka.Message{{Key: []byte("pet-1")}}, errors.New("broker down"))
		w.Completion(nil, nil)
	})
}
