package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/abababa124444-cmd/arab-chat1/internal/config"
	"github.com/abababa124444-cmd/arab-chat1/internal/databus"
	"github.com/abababa124444-cmd/arab-chat1/internal/databus/user"
	"github.com/abababa124444-cmd/arab-chat1/internal/repository/postgres"
)

func main() {
	cfg := config.MustLoad()

	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Service.Name+"-user-worker").
		Str("env", cfg.Platform.Env).
		Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Kafka.Addr()},
		Topic:   cfg.Kafka.UserTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close kafka reader")
		}
	}()

	userHandler := user.New(dbRepo)
	consumer := databus.NewConsumer(reader, userHandler.Handler)

	logger.Info().Str("topic", cfg.Kafka.UserTopic).Str("group", cfg.Kafka.GroupID).Msg("user profile consumer started")

	if err := consumer.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("consumer stopped")
	}
}
