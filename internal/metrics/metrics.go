// Package metrics provides the centralized Prometheus registry for the
// analyze service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	AnalysesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "betsync",
		Name:      "analyses_total",
		Help:      "Total number of analysis passes completed",
	})
	AnalysisFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "betsync",
		Name:      "analysis_failures_total",
		Help:      "Total number of failed analysis requests by reason",
	}, []string{"reason"})
	RowsDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "betsync",
		Name:      "rows_dropped_total",
		Help:      "Total number of rows dropped during cleaning",
	})
)

// Histogram metrics
var (
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "betsync",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of analysis passes in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	RiskScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "betsync",
		Name:      "risk_score",
		Help:      "Distribution of computed limit-risk scores",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(AnalysesTotal)
		registry.MustRegister(AnalysisFailuresTotal)
		registry.MustRegister(RowsDroppedTotal)
		registry.MustRegister(AnalysisDuration)
		registry.MustRegister(RiskScore)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordAnalysis records one completed analysis pass.
func RecordAnalysis(durationSeconds float64, droppedRows int, score float64) {
	AnalysesTotal.Inc()
	AnalysisDuration.Observe(durationSeconds)
	RowsDroppedTotal.Add(float64(droppedRows))
	RiskScore.Observe(score)
}

// RecordFailure records a failed analysis request.
func RecordFailure(reason string) {
	AnalysisFailuresTotal.WithLabelValues(reason).Inc()
}
