package order_events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/IBM/sarama"
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

const (
	dropReasonMarshal    = "marshal"
	dropReasonBufferFull = "buffer_full"
	dropReasonClosed     = "closed"
)

// Publisher отправляет события заказа в Kafka без ожидания подтверждения.
// Ключ сообщения - id заказа, поэтому события одного заказа попадают в одну партицию.
type Publisher struct {
	log      gatewayLogger
	producer sarama.AsyncProducer
	topic    string
	mu       sync.RWMutex
	closed   bool
	wg       sync.WaitGroup
}

func New(log gatewayLogger, producer sarama.AsyncProducer, topic string) *Publisher {
	p := &Publisher{
		log: log.With(
			logger.NewField("gateway", "order_events"),
			logger.NewField("topic", topic),
		),
		producer: producer,
		topic:    topic,
	}

	p.wg.Add(2)
	go p.drainSuccesses()
	go p.drainErrors()

	return p
}

func (p *Publisher) OrderUpdated(_ context.Context, event entities.OrderEvent) {
	eventLog := p.log.With(
		logger.NewField("event_id", event.ID.String()),
		logger.NewField("event_type", event.Type.String()),
		logger.NewField("order", event.OrderID.String()),
	)

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		EventsDroppedTotal.WithLabelValues(event.Type.String(), dropReasonMarshal).Inc()
		eventLog.With(
			logger.NewField("error", err),
		).Error("order event dropped: marshal failed")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic:    p.topic,
		Key:      sarama.StringEncoder(event.OrderID.String()),
		Value:    sarama.ByteEncoder(payload),
		Metadata: event.Type.String(),
	}

	// Input закрывается в Close, поэтому отправка идёт под read-блокировкой
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		EventsDroppedTotal.WithLabelValues(event.Type.String(), dropReasonClosed).Inc()
		eventLog.Warn("order event dropped: publisher closed")
		return
	}

	select {
	case p.producer.Input() <- msg:
	default:
		EventsDroppedTotal.WithLabelValues(event.Type.String(), dropReasonBufferFull).Inc()
		eventLog.Warn("order event dropped: producer buffer is full")
	}
}

// Close дожидается отправки сообщений из буфера и останавливает продьюсер.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.producer.AsyncClose()
	p.mu.Unlock()

	p.wg.Wait()

	p.log.Info("order events publisher closed")
	return nil
}

func (p *Publisher) drainSuccesses() {
	defer p.wg.Done()

	for msg := range p.producer.Successes() {
		EventsPublishedTotal.WithLabelValues(eventType(msg)).Inc()
	}
}

func (p *Publisher) drainErrors() {
	defer p.wg.Done()

	for prodErr := range p.producer.Errors() {
		EventsFailedTotal.WithLabelValues(eventType(prodErr.Msg)).Inc()

		fields := []logger.Field{
			logger.NewField("error", prodErr.Err),
			logger.NewField("event_type", eventType(prodErr.Msg)),
		}
		if prodErr.Msg != nil && prodErr.Msg.Key != nil {
			if key, err := prodErr.Msg.Key.Encode(); err == nil {
				fields = append(fields, logger.NewField("order", string(key)))
			}
		}
		p.log.With(fields...).Error("order event publish failed")
	}
}

func eventType(msg *sarama.ProducerMessage) string {
	if msg == nil {
		return "unknown"
	}
	t, ok := msg.Metadata.(string)
	if !ok {
		return "unknown"
	}
	return t
}
