package order_updated

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"storefront/internal/service/notification"
	"storefront/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order_updated"),
	)

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт - выходим
				h.log.Info("order.updated: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) - выходим
			h.log.Info("order.updated: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста),
// сообщение при этом не помечается и будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var raw orderUpdatedEvent
	err := json.Unmarshal(message.Value, &raw)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.updated handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	event, err := toDomain(raw)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.updated handler received malformed event")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", raw.EventID),
		logger.NewField("event_type", raw.Type),
		logger.NewField("order", raw.OrderID),
		logger.NewField("status", raw.Status),
		logger.NewField("payment_status", raw.PaymentStatus),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.updated processing")

	sent, err := h.notificationService.Notify(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.updated handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrUndefinedEvent):
			msgLog.Info("order.updated handler: no notification for event, skipped")

		case errors.Is(err, notification.ErrInvalidRecipient):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.updated handler invalid recipient")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.updated handler failed to notify")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("to_user", sent.UserID.String()),
		logger.NewField("subject", sent.Subject),
	).Info("order.updated: processed")

	sess.MarkMessage(message, "")
	return false
}
