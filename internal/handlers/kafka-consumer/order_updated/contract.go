//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_updated_test
package order_updated

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Notify(ctx context.Context, event entities.OrderEvent) (*entities.Notification, error)
}
