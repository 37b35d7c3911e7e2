package order_updated

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

type orderUpdatedEvent struct {
	EventID               string    `json:"event_id"`
	Type                  string    `json:"type"`
	OrderID               string    `json:"order_id"`
	UserID                string    `json:"user_id"`
	Status                string    `json:"status"`
	PreviousStatus        string    `json:"previous_status"`
	PaymentStatus         string    `json:"payment_status"`
	PreviousPaymentStatus string    `json:"previous_payment_status"`
	PaymentMethod         string    `json:"payment_method"`
	TotalPrice            string    `json:"total_price"`
	OccurredAt            time.Time `json:"occurred_at"`
}

func toDomain(event orderUpdatedEvent) (entities.OrderEvent, error) {
	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("event_id: %w", err)
	}

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("order_id: %w", err)
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("user_id: %w", err)
	}

	totalPrice, err := decimal.NewFromString(event.TotalPrice)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("total_price: %w", err)
	}

	return entities.OrderEvent{
		ID:                    eventID,
		Type:                  entities.OrderEventType(event.Type),
		OrderID:               orderID,
		UserID:                userID,
		Status:                entities.OrderStatusType(event.Status),
		PreviousStatus:        entities.OrderStatusType(event.PreviousStatus),
		PaymentStatus:         entities.PaymentStatusType(event.PaymentStatus),
		PreviousPaymentStatus: entities.PaymentStatusType(event.PreviousPaymentStatus),
		PaymentMethod:         entities.PaymentMethodType(event.PaymentMethod),
		TotalPrice:            totalPrice,
		OccurredAt:            event.OccurredAt,
	}, nil
}
