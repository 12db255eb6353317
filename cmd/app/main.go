package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mzhdanova/autoservice/config"
	"github.com/mzhdanova/autoservice/internal/bootstrap"
	"github.com/mzhdanova/autoservice/internal/database"
	"github.com/mzhdanova/autoservice/internal/email"
	"github.com/mzhdanova/autoservice/internal/kafka"
	"github.com/mzhdanova/autoservice/internal/repository"
	"github.com/mzhdanova/autoservice/internal/service/auth"
	"github.com/mzhdanova/autoservice/internal/service/booking"
	"github.com/mzhdanova/autoservice/internal/service/catalog"
	"github.com/mzhdanova/autoservice/pkg/logger"
)

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

	if err := database.Migrate(cfg.Database.URL()); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	authSvc := auth.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	catalogSvc := catalog.NewCatalogService(serviceRepo)

	// With brokers configured, confirmations go through Kafka and the
	// worker sends the email; otherwise they are sent over SMTP directly.
	var notifier booking.Notifier
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		notifier = kafka.NewConfirmationPublisher(producer, cfg.Kafka.NotificationsTopic)
	} else {
		notifier = email.NewSender(cfg.SMTP)
	}

	bookingSvc := booking.NewBookingService(bookingRepo, serviceRepo, notifier, log)

	if err := bootstrap.Run(ctx, cfg, log, authSvc, catalogSvc, bookingSvc); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
