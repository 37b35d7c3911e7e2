//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher не возвращает ошибку: доставка событий не должна влиять
// на результат операции над заказом.
type EventPublisher interface {
	OrderUpdated(ctx context.Context, event entities.OrderEvent)
}
