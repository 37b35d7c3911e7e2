package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"storefront/internal/gateway/kafka/order_events"
	"storefront/internal/gateway/mailer"
	"storefront/internal/handlers/tasks/order_metrics"
	"storefront/internal/pkg/config"
	orderRepo "storefront/internal/repository/order"
	notificationService "storefront/internal/service/notification"
	orderService "storefront/internal/service/order"
	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideEventsTopic(cfg *config.Config) EventsTopic {
	return EventsTopic(cfg.Kafka.Topic)
}

func provideEventPublisher(log logger.Logger, producer sarama.AsyncProducer, topic EventsTopic) *order_events.Publisher {
	return order_events.New(log, producer, string(topic))
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(repository, txManager, publisher)
}

func provideOrderMetricsInterval(cfg *config.Config) OrderMetricsInterval {
	return OrderMetricsInterval(cfg.Tasks.OrderMetricsInterval)
}

func provideOrderMetricsTask(
	log logger.Logger,
	service order_metrics.Service,
	interval OrderMetricsInterval,
) *order_metrics.OrderMetrics {
	return order_metrics.NewOrderMetrics(log, service, time.Duration(interval))
}

func provideTaskList(
	orderMetricsTask *order_metrics.OrderMetrics,
) []background.Task {
	return []background.Task{
		orderMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideMailer(log logger.Logger) *mailer.LogMailer {
	return mailer.NewLogMailer(log)
}

func provideNotificationService(
	factory notificationService.ComposerFactory,
	mailer notificationService.Mailer,
) *notificationService.Service {
	return notificationService.New(factory, mailer)
}
