//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"storefront/internal/gateway/kafka/order_events"
	"storefront/internal/gateway/mailer"
	"storefront/internal/handlers/tasks/order_metrics"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/factory/notification_message"

	orderRepo "storefront/internal/repository/order"
	notificationService "storefront/internal/service/notification"
	orderService "storefront/internal/service/order"

	"storefront/pkg/logger"
	"storefront/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.AsyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderMetricsInterval,
		provideEventsTopic,

		provideOrderRepository,
		provideEventPublisher,
		provideServiceOrder,

		provideOrderMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.EventPublisher), new(*order_events.Publisher)),

		wire.Bind(new(order_metrics.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

// InitializeNotificationWorkerApp для Kafka воркера (cmd/worker-order-notifications)
func InitializeNotificationWorkerApp(
	log logger.Logger,
) (*NotificationWorkerApp, error) {
	wire.Build(
		notification_message.New,
		provideMailer,
		provideNotificationService,

		wire.Bind(new(notificationService.ComposerFactory), new(*notification_message.ComposerFactory)),
		wire.Bind(new(notificationService.Mailer), new(*mailer.LogMailer)),

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}
