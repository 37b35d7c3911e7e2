//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_metrics_test
package order_metrics

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CountOrdersByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}
