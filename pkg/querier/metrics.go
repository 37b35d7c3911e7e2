package querier

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opExec     = "exec"
	opQuery    = "query"
	opQueryRow = "query_row"
)

var (
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database calls",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"op"},
	)

	QueryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database calls",
		},
		[]string{"op"},
	)
)

func observe(op string, start time.Time, err error) {
	QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		QueryErrorsTotal.WithLabelValues(op).Inc()
	}
}
