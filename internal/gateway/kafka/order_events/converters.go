package order_events

import (
	"time"

	"storefront/internal/entities"
)

// orderEventMessage - формат события в топике, общий для всех подписчиков.
type orderEventMessage struct {
	EventID               string    `json:"event_id"`
	Type                  string    `json:"type"`
	OrderID               string    `json:"order_id"`
	UserID                string    `json:"user_id"`
	Status                string    `json:"status"`
	PreviousStatus        string    `json:"previous_status,omitempty"`
	PaymentStatus         string    `json:"payment_status"`
	PreviousPaymentStatus string    `json:"previous_payment_status,omitempty"`
	PaymentMethod         string    `json:"payment_method"`
	TotalPrice            string    `json:"total_price"`
	OccurredAt            time.Time `json:"occurred_at"`
}

func toMessage(event entities.OrderEvent) orderEventMessage {
	return orderEventMessage{
		EventID:               event.ID.String(),
		Type:                  event.Type.String(),
		OrderID:               event.OrderID.String(),
		UserID:                event.UserID.String(),
		Status:                event.Status.String(),
		PreviousStatus:        event.PreviousStatus.String(),
		PaymentStatus:         event.PaymentStatus.String(),
		PreviousPaymentStatus: event.PreviousPaymentStatus.String(),
		PaymentMethod:         event.PaymentMethod.String(),
		TotalPrice:            event.TotalPrice.StringFixed(2),
		OccurredAt:            event.OccurredAt,
	}
}
