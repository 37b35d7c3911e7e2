package order_metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"storefront/pkg/logger"
)

// OrderMetrics периодически выгружает количество заказов по статусам в gauge.
type OrderMetrics struct {
	log      taskLogger
	service  Service
	interval time.Duration
	gauge    *prometheus.GaugeVec
}

func NewOrderMetrics(log taskLogger, service Service, interval time.Duration) *OrderMetrics {
	return &OrderMetrics{
		log:      log.With(logger.NewField("task", "order_metrics")),
		service:  service,
		interval: interval,
		gauge:    OrdersByStatus,
	}
}

func (o *OrderMetrics) TTL() time.Duration {
	return o.interval
}

func (o *OrderMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("order metrics: %w", err)
	}

	var total int64
	for _, c := range counts {
		o.gauge.WithLabelValues(c.Status.String()).Set(float64(c.Count))
		total += c.Count
	}

	o.log.With(
		logger.NewField("orders_total", total),
	).Info("order metrics refreshed")

	return nil
}

func (o *OrderMetrics) Info() string {
	return "order metrics"
}
