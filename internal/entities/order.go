package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          OrderStatusType
	PaymentMethod   PaymentMethodType
	PaymentStatus   PaymentStatusType
	Price           decimal.Decimal
	TotalPrice      decimal.Decimal
	DeliveryAddress DeliveryAddress
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DeliveryAddress struct {
	Street string
	City   string
	State  string
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "pending"
	PaymentCompleted PaymentStatusType = "completed"
	PaymentFailed    PaymentStatusType = "failed"
)

const DefaultPaymentStatus = PaymentPending

func (s PaymentStatusType) String() string {
	return string(s)
}

func (s PaymentStatusType) IsValid() bool {
	_, ok := paymentStatusTransitions[s]
	return ok
}

type PaymentMethodType string

const (
	PaymentGateway    PaymentMethodType = "gateway"
	PaymentOnDelivery PaymentMethodType = "delivery"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

func (m PaymentMethodType) IsValid() bool {
	switch m {
	case PaymentGateway, PaymentOnDelivery:
		return true
	default:
		return false
	}
}

type OrderModify struct {
	ID              *uuid.UUID
	UserID          *uuid.UUID
	Status          *OrderStatusType
	PaymentMethod   *PaymentMethodType
	PaymentStatus   *PaymentStatusType
	Price           *decimal.Decimal
	TotalPrice      *decimal.Decimal
	DeliveryAddress *DeliveryAddress
}

type OrderFilter struct {
	Status        *OrderStatusType
	PaymentStatus *PaymentStatusType
	UserID        *uuid.UUID
	Limit         uint64
	Offset        uint64
}

// OrderTransition - результат применения перехода: обновлённый заказ
// и значения до перехода для отображения в админке.
type OrderTransition struct {
	Order                 Order
	PreviousStatus        OrderStatusType
	PreviousPaymentStatus PaymentStatusType
}

// OrderActions - действия, которые админка может предложить для заказа.
type OrderActions struct {
	Order               Order
	NextStatuses        []OrderStatusType
	NextPaymentStatuses []PaymentStatusType
}

type OrderStatusCount struct {
	Status OrderStatusType
	Count  int64
}
