package order

import (
	"time"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

func newOrderEvent(eventType entities.OrderEventType, transition entities.OrderTransition) entities.OrderEvent {
	order := transition.Order
	return entities.OrderEvent{
		ID:                    uuid.New(),
		Type:                  eventType,
		OrderID:               order.ID,
		UserID:                order.UserID,
		Status:                order.Status,
		PreviousStatus:        transition.PreviousStatus,
		PaymentStatus:         order.PaymentStatus,
		PreviousPaymentStatus: transition.PreviousPaymentStatus,
		PaymentMethod:         order.PaymentMethod,
		TotalPrice:            order.TotalPrice,
		OccurredAt:            time.Now().UTC(),
	}
}
