package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abalfour/flightbooking/config"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(cfg config.KafkaConfig, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.GroupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// ConsumeReservationEvents delivers decoded reservation events to the
// handler until the context is cancelled or the handler fails. Messages
// that do not decode are logged and skipped so one bad message cannot
// stall the group.
func (c *Consumer) ConsumeReservationEvents(ctx context.Context, handler func(context.Context, ReservationEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event ReservationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn().Err(err).Str("topic", msg.Topic).Msg("decode reservation event")
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}
