package service

import (
	"context"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/ws"
	"lodge/internal/domains/notification/model"
)

// Relay bridges the notification topic to connected websocket clients.
type Relay struct {
	cfg   *config.Config
	kafka kafka.Client
	hub   ws.Hub
}

func NewRelay(cfg *config.Config, kafka kafka.Client, hub ws.Hub) *Relay {
	return &Relay{
		cfg:   cfg,
		kafka: kafka,
		hub:   hub,
	}
}

// Run consumes notification events until the context is cancelled. Intended to
// be started in its own goroutine next to the HTTP server.
func (r *Relay) Run(ctx context.Context) {
	topic := r.cfg.Kafka.Topics.Notifications

	log.Info().Str("topic", topic).Msg("notification relay started")

	r.kafka.Consume(ctx, r.cfg.Kafka.ConsumerGroup, topic, func(msg kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[model.Event](msg)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode notification event")

			return
		}

		event, ok := decoded.Value.(model.Event)
		if !ok {
			log.Error().Msg("unexpected notification payload type")

			return
		}

		r.hub.Broadcast(ctx, event)
	})
}
