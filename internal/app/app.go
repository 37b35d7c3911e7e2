package app

import (
	"time"

	"storefront/internal/gateway/kafka/order_events"
	"storefront/internal/handlers/rest/order_actions_get"
	"storefront/internal/handlers/rest/order_get"
	"storefront/internal/handlers/rest/order_payment_status_patch"
	"storefront/internal/handlers/rest/order_post"
	"storefront/internal/handlers/rest/order_status_patch"
	"storefront/internal/handlers/rest/orders_get"
	notificationService "storefront/internal/service/notification"
	"storefront/pkg/background"
)

type (
	OrderMetricsInterval time.Duration
	EventsTopic          string
)

type Application struct {
	ServiceOrder      ServiceOrder
	EventPublisher    *order_events.Publisher
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	order_actions_get.Service
	orders_get.Service
	order_post.Service
	order_status_patch.Service
	order_payment_status_patch.Service
}

type NotificationWorkerApp struct {
	NotificationService *notificationService.Service
}
