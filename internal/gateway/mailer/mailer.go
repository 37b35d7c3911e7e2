package mailer

import (
	"context"
	"fmt"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

// LogMailer пишет уведомления в лог вместо реальной отправки почты.
type LogMailer struct {
	log gatewayLogger
}

func NewLogMailer(log gatewayLogger) *LogMailer {
	return &LogMailer{
		log: log.With(logger.NewField("gateway", "mailer")),
	}
}

func (m *LogMailer) Send(ctx context.Context, notification entities.Notification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	m.log.With(
		logger.NewField("to_user", notification.UserID.String()),
		logger.NewField("order", notification.OrderID.String()),
		logger.NewField("subject", notification.Subject),
		logger.NewField("body", notification.Body),
	).Info("notification sent")

	return nil
}
