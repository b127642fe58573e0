package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GraphQLMetrics holds the metrics for GraphQL operations
type GraphQLMetrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewGraphQLMetrics creates and registers the operation metrics.
func NewGraphQLMetrics(registry prometheus.Registerer) *GraphQLMetrics {
	m := &GraphQLMetrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yeoman_graphql_operations_total",
				Help: "Total GraphQL operations by name and status",
			},
			[]string{"operation", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "yeoman_graphql_duration_seconds",
				Help:    "GraphQL operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	if registry != nil {
		registry.MustRegister(m.Operations, m.Duration)
	}
	return m
}

// Observe records one completed operation.
func (m *GraphQLMetrics) Observe(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, status).Inc()
	m.Duration.WithLabelValues(operation).Observe(seconds)
}
