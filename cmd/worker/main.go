package main

import (
	"context"
	"os"
	"os/signal"
	"roost/config"
	"roost/infras/kafka"
	"roost/internal/domains/booking/model/dto"
	"roost/internal/email"
	"roost/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker consumes booking events and delivers guest notifications. It
// runs as a separate process so the API never blocks on delivery.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := kafka.New(cfg)
	sender := email.NewSender()

	go client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.BookingTopic, func(message kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[dto.BookingEvent](message)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode booking event")

			return
		}

		event, ok := decoded.Value.(dto.BookingEvent)
		if !ok {
			log.Error().Str("key", decoded.Key).Msg("Unexpected booking event payload")

			return
		}

		if err := sender.Send(ctx, event); err != nil {
			log.Error().Err(err).Str("bookingID", event.BookingID).Msg("Failed to send booking notification")
		}
	})

	log.Info().Str("topic", cfg.Kafka.BookingTopic).Msg("Booking events worker started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info().Msg("Shutting down booking events worker")
}
