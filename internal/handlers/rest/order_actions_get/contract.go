//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_actions_get_test
package order_actions_get

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
	GetOrderActions(ctx context.Context, orderID string) (*entities.OrderActions, error)
}
