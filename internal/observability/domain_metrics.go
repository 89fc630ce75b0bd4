package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	chatRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaignchat_chat_requests_total",
			Help: "Total number of chat pipeline runs by topic and outcome.",
		},
		[]string{"topic", "outcome"},
	)
	warehouseQuerySeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaignchat_warehouse_query_duration_seconds",
			Help:    "Warehouse statement latency including session setup and release.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)
	warehouseQueryErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaignchat_warehouse_query_errors_total",
			Help: "Total number of failed warehouse statements.",
		},
	)
	chartsEmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaignchat_charts_emitted_total",
			Help: "Total number of chart payloads attached to responses, by kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		chatRequestsTotal,
		warehouseQuerySeconds,
		warehouseQueryErrorsTotal,
		chartsEmittedTotal,
	)
}

func ObserveChatRequest(topic, outcome string) {
	chatRequestsTotal.WithLabelValues(topic, outcome).Inc()
}

func ObserveWarehouseQuery(elapsed time.Duration, err error) {
	warehouseQuerySeconds.Observe(elapsed.Seconds())
	if err != nil {
		warehouseQueryErrorsTotal.Inc()
	}
}

func ObserveChartEmitted(kind string) {
	chartsEmittedTotal.WithLabelValues(kind).Inc()
}
