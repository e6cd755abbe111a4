package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/notification/model"
	"lodge/shared/constant"
)

type Notifier interface {
	NotifyNewInquiry(ctx context.Context, name, subject string)
}

type serviceImpl struct {
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, otel otel.Otel) Notifier {
	return &serviceImpl{
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

// NotifyNewInquiry publishes a notification event. Delivery is best-effort:
// publish failures are logged and never surfaced to the caller.
func (s *serviceImpl) NotifyNewInquiry(ctx context.Context, name, subject string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".NotifyNewInquiry")
	defer scope.End()

	event := model.NewInquiryEvent(name, subject)

	message := kafka.Message{
		Key:   model.TypeInquiry,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Notifications, message); err != nil {
		log.Error().Err(err).Msg("failed to publish notification event")
	}
}
