package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultError   = "error"
	resultPanic   = "panic"
)

var TaskRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "background_task_runs_total",
		Help: "Number of background task runs",
	},
	[]string{"task", "result"},
)

func observeRun(task Task, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	TaskRunsTotal.WithLabelValues(task.Info(), result).Inc()
}
