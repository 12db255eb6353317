package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/mzhdanova/autoservice/internal/domain"
)

// ConfirmationHandler processes one decoded confirmation event.
type ConfirmationHandler func(ctx context.Context, confirmation domain.BookingConfirmation) error

// Consumer drains the notifications topic and hands decoded confirmation
// events to a handler. Undecodable messages are logged and skipped; a
// handler error stops the loop.
type Consumer struct {
	reader *kafka.Reader
	log    zerolog.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log zerolog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler ConfirmationHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		confirmation, err := decodeConfirmation(msg)
		if err != nil {
			c.log.Error().Err(err).Int64("offset", msg.Offset).Msg("skipping undecodable message")
			continue
		}

		if err := handler(ctx, confirmation); err != nil {
			return err
		}
	}
}

func decodeConfirmation(msg kafka.Message) (domain.BookingConfirmation, error) {
	var confirmation domain.BookingConfirmation
	if err := json.Unmarshal(msg.Value, &confirmation); err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("decode confirmation event: %w", err)
	}
	return confirmation, nil
}
