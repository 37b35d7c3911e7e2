package notification_message

import (
	"fmt"
	"strings"

	"storefront/internal/entities"
	"storefront/internal/service/notification"
)

type templateData struct {
	OrderID       string
	TotalPrice    string
	Status        string
	PaymentStatus string
	PaymentMethod string
}

type ComposerFactory struct{}

func New() *ComposerFactory {
	return &ComposerFactory{}
}

// GetComposer выбирает шаблон по типу события и новому статусу заказа или оплаты.
func (f *ComposerFactory) GetComposer(event entities.OrderEvent) (notification.ComposeFn, error) {
	tmpl, ok := f.templateFor(event)
	if !ok {
		return nil, fmt.Errorf("%w: %s (status %s, payment %s)",
			notification.ErrUndefinedEvent, event.Type, event.Status, event.PaymentStatus)
	}

	return func(event entities.OrderEvent) (entities.Notification, error) {
		return compose(tmpl, event)
	}, nil
}

func (f *ComposerFactory) templateFor(event entities.OrderEvent) (messageTemplate, bool) {
	switch event.Type {
	case entities.OrderEventCreated:
		return orderCreatedTemplate, true

	case entities.OrderEventStatusChanged:
		switch event.Status {
		case entities.OrderProcessing:
			return orderProcessingTemplate, true
		case entities.OrderShipped:
			return orderShippedTemplate, true
		case entities.OrderDelivered:
			return orderDeliveredTemplate, true
		case entities.OrderCancelled:
			return orderCancelledTemplate, true
		}

	case entities.OrderEventPaymentStatusChanged:
		switch event.PaymentStatus {
		case entities.PaymentCompleted:
			return paymentCompletedTemplate, true
		case entities.PaymentFailed:
			return paymentFailedTemplate, true
		case entities.PaymentPending:
			return paymentPendingTemplate, true
		}
	}

	return messageTemplate{}, false
}

func compose(tmpl messageTemplate, event entities.OrderEvent) (entities.Notification, error) {
	data := templateData{
		OrderID:       event.OrderID.String(),
		TotalPrice:    event.TotalPrice.StringFixed(2),
		Status:        event.Status.String(),
		PaymentStatus: event.PaymentStatus.String(),
		PaymentMethod: event.PaymentMethod.String(),
	}

	var body strings.Builder
	err := tmpl.body.Execute(&body, data)
	if err != nil {
		return entities.Notification{}, fmt.Errorf("render %s: %w", tmpl.body.Name(), err)
	}

	return entities.Notification{
		UserID:  event.UserID,
		OrderID: event.OrderID,
		Subject: tmpl.subject,
		Body:    body.String(),
	}, nil
}
