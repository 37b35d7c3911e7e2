//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"storefront/internal/entities"
)

// ComposeFn собирает текст уведомления по событию заказа.
type ComposeFn func(event entities.OrderEvent) (entities.Notification, error)

type ComposerFactory interface {
	GetComposer(event entities.OrderEvent) (ComposeFn, error)
}

type Mailer interface {
	Send(ctx context.Context, notification entities.Notification) error
}
