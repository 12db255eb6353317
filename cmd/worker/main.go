package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/mzhdanova/autoservice/config"
	"github.com/mzhdanova/autoservice/internal/domain"
	"github.com/mzhdanova/autoservice/internal/email"
	"github.com/mzhdanova/autoservice/internal/kafka"
	"github.com/mzhdanova/autoservice/pkg/logger"
)

// The worker drains the notifications topic and sends confirmation emails.
// Each confirmation gets one delivery attempt; failures are logged and skipped.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, log)
	defer consumer.Close()

	sender := email.NewSender(cfg.SMTP)

	err = consumer.Consume(ctx, func(ctx context.Context, confirmation domain.BookingConfirmation) error {
		if err := sender.SendBookingConfirmation(ctx, confirmation); err != nil {
			log.Warn().
				Err(err).
				Str("reference", confirmation.Reference).
				Str("to", confirmation.To).
				Msg("confirmation email failed")
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("consumer stopped")
	}
}
