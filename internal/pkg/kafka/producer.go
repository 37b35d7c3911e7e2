package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"storefront/internal/pkg/config"
	"storefront/pkg/logger"
)

// NewAsyncProducer подключается к брокерам с ретраями и возвращает
// асинхронный продьюсер. Каналы Successes и Errors должен вычитывать вызывающий.
func NewAsyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.AsyncProducer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version, cfg.Producer.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := Brokers(cfg.Brokers)

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	return producer, nil
}
