package kafka

import (
	"context"

	"github.com/mzhdanova/autoservice/internal/domain"
)

// ConfirmationPublisher hands the confirmation off to the notifications
// topic; the worker picks it up and sends the actual email. Publishing is
// the single delivery attempt from the coordinator's point of view.
type ConfirmationPublisher struct {
	producer *Producer
	topic    string
}

func NewConfirmationPublisher(producer *Producer, topic string) *ConfirmationPublisher {
	return &ConfirmationPublisher{producer: producer, topic: topic}
}

func (p *ConfirmationPublisher) SendBookingConfirmation(ctx context.Context, confirmation domain.BookingConfirmation) error {
	return p.producer.Publish(ctx, p.topic, confirmation.Reference, confirmation)
}
