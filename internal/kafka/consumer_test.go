package kafka

import (
	"testing"

	"github.com/abalfour/flightbooking/config"
	"github.com/stretchr/testify/assert"
)

func TestNewConsumer(t *testing.T) {
	cfg := config.KafkaConfig{
		Brokers: []string{"localhost:9092"},
		GroupID: "flightbooking-workers",
	}

	consumer := NewConsumer(cfg, "reservation_notifications")
	defer consumer.Close()

	assert.NotNil(t, consumer)
	assert.NotNil(t, consumer.reader)
}

func TestConsumer_Close_NilSafe(t *testing.T) {
	var consumer *Consumer
	assert.NoError(t, consumer.Close())

	assert.NoError(t, (&Consumer{}).Close())
}
