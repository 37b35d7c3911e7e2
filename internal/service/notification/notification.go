package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

type Service struct {
	factory ComposerFactory
	mailer  Mailer
}

func New(factory ComposerFactory, mailer Mailer) *Service {
	return &Service{
		factory: factory,
		mailer:  mailer,
	}
}

// Notify отправляет покупателю уведомление об изменении заказа.
// Для событий без шаблона возвращается ErrUndefinedEvent.
func (s *Service) Notify(ctx context.Context, event entities.OrderEvent) (*entities.Notification, error) {
	if event.UserID == uuid.Nil {
		return nil, ErrInvalidRecipient
	}

	compose, err := s.factory.GetComposer(event)
	if err != nil {
		return nil, err
	}

	notification, err := compose(event)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrComposeFailed, err)
	}

	err = s.mailer.Send(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("send notification for order %s: %w", event.OrderID, err)
	}

	return &notification, nil
}
