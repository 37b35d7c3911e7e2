package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderEventType string

const (
	OrderEventCreated              OrderEventType = "order.created"
	OrderEventStatusChanged        OrderEventType = "order.status_changed"
	OrderEventPaymentStatusChanged OrderEventType = "order.payment_status_changed"
)

func (t OrderEventType) String() string {
	return string(t)
}

// OrderEvent - событие "заказ обновлён" для подписчиков (уведомления и т.п.).
type OrderEvent struct {
	ID                    uuid.UUID
	Type                  OrderEventType
	OrderID               uuid.UUID
	UserID                uuid.UUID
	Status                OrderStatusType
	PreviousStatus        OrderStatusType
	PaymentStatus         PaymentStatusType
	PreviousPaymentStatus PaymentStatusType
	PaymentMethod         PaymentMethodType
	TotalPrice            decimal.Decimal
	OccurredAt            time.Time
}

type Notification struct {
	UserID  uuid.UUID
	OrderID uuid.UUID
	Subject string
	Body    string
}
