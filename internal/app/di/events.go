package di

import (
	"log/slog"

	orderusecase "shop_backend/internal/feature/order/usecase"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/platform/events"
)

// NewEventPublisher returns the Kafka publisher and its close function, or
// a nil publisher and a no-op close when no brokers are configured.
func NewEventPublisher(cfg config.KafkaConfig) (orderusecase.EventPublisher, func() error) {
	if len(cfg.Brokers) == 0 {
		slog.Info("KAFKA_BROKERS not set; order events are disabled")
		return nil, func() error { return nil }
	}
	p := events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
	slog.Info("order events enabled", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return p, p.Close
}
