package go_pkcrypto

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"
)

// PrometheusMetrics implements MetricsCollector on top of
// github.com/prometheus/client_golang. All series live under the
// "pkcrypto" namespace.
type PrometheusMetrics struct {
	operations     *prometheus.CounterVec
	errors         *prometheus.CounterVec
	verifyFailures *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

var _ MetricsCollector = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates the collectors and registers them on reg.
// Pass prometheus.DefaultRegisterer to expose them on the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pkcrypto",
				Name:      "operations_total",
				Help:      "Count of completed operations by algorithm and operation",
			},
			[]string{"algorithm", "operation"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pkcrypto",
				Name:      "errors_total",
				Help:      "Count of operations that returned an error",
			},
			[]string{"algorithm", "operation"},
		),
		verifyFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pkcrypto",
				Name:      "verify_failures_total",
				Help:      "Count of signatures rejected by Verify",
			},
			[]string{"algorithm"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pkcrypto",
				Name:      "operation_seconds",
				Help:      "Time spent in each operation",
				Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"algorithm", "operation"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.errors, m.verifyFailures, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, oops.In("metrics").Wrapf(err, "register prometheus collector")
		}
	}

	return m, nil
}

// IncrementOperation increments pkcrypto_operations_total.
func (m *PrometheusMetrics) IncrementOperation(algorithm, operation string) {
	m.operations.WithLabelValues(algorithm, operation).Inc()
}

// IncrementError increments pkcrypto_errors_total.
func (m *PrometheusMetrics) IncrementError(algorithm, operation string) {
	m.errors.WithLabelValues(algorithm, operation).Inc()
}

// IncrementVerifyFailure increments pkcrypto_verify_failures_total.
func (m *PrometheusMetrics) IncrementVerifyFailure(algorithm string) {
	m.verifyFailures.WithLabelValues(algorithm).Inc()
}

// RecordOperationLatency observes pkcrypto_operation_seconds.
func (m *PrometheusMetrics) RecordOperationLatency(algorithm, operation string, duration time.Duration) {
	m.latency.WithLabelValues(algorithm, operation).Observe(duration.Seconds())
}
