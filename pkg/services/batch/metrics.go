package batch

import "github.com/prometheus/client_golang/prometheus"

var (
	batchItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "curator",
			Name:      "batch_items_total",
			Help:      "Total number of batch items processed, by outcome status",
		},
		[]string{"status"},
	)

	batchRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "curator",
			Name:      "batch_runs_total",
			Help:      "Total number of batch runs, by result",
		},
		[]string{"result"},
	)

	batchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "curator",
			Name:      "batch_duration_seconds",
			Help:      "Wall-clock duration of completed batch runs",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
	)
)

func init() {
	prometheus.MustRegister(batchItems)
	prometheus.MustRegister(batchRuns)
	prometheus.MustRegister(batchDuration)
}
