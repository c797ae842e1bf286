// Package observability provides Prometheus metrics for the research API.
//
// Metrics are exposed on the /metrics endpoint. Every metric is registered
// against the registerer passed to NewResearchMetrics, so tests can use an
// isolated registry.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "legalresearch"

const (
	researchSubsystem = "research"
	corpusSubsystem   = "corpus"
)

// Query status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Collection label values
const (
	CollectionStatutes = "statutes"
	CollectionCases    = "cases"
)

// ResearchMetrics holds the Prometheus metrics for research queries.
//
// A nil *ResearchMetrics is valid and records nothing.
type ResearchMetrics struct {
	// QueriesTotal counts research queries by status (success, error)
	QueriesTotal *prometheus.CounterVec

	// SelectionFallbacksTotal counts selections that ignored an under-matching filter.
	// Labels: collection (statutes, cases)
	SelectionFallbacksTotal *prometheus.CounterVec

	// QueryDurationSeconds measures time spent assembling a result
	QueryDurationSeconds prometheus.Histogram

	// CorpusRecords reports the number of loaded records per collection
	CorpusRecords *prometheus.GaugeVec
}

// NewResearchMetrics creates and registers all research metrics on reg
func NewResearchMetrics(reg prometheus.Registerer) *ResearchMetrics {
	factory := promauto.With(reg)

	return &ResearchMetrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: researchSubsystem,
				Name:      "queries_total",
				Help:      "Total number of research queries by status",
			},
			[]string{"status"},
		),

		SelectionFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: researchSubsystem,
				Name:      "selection_fallbacks_total",
				Help:      "Selections that fell back to the unfiltered corpus",
			},
			[]string{"collection"},
		),

		QueryDurationSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: researchSubsystem,
				Name:      "query_duration_seconds",
				Help:      "Time to assemble a research result in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
		),

		CorpusRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: corpusSubsystem,
				Name:      "records",
				Help:      "Number of records loaded per corpus collection",
			},
			[]string{"collection"},
		),
	}
}

// RecordQuery records the outcome and duration of one research query
func (m *ResearchMetrics) RecordQuery(status string, seconds float64) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(status).Inc()
	m.QueryDurationSeconds.Observe(seconds)
}

// RecordFallback records a selection fallback for a collection
func (m *ResearchMetrics) RecordFallback(collection string) {
	if m == nil {
		return
	}
	m.SelectionFallbacksTotal.WithLabelValues(collection).Inc()
}

// SetCorpusSize publishes the loaded corpus sizes
func (m *ResearchMetrics) SetCorpusSize(statutes, cases int) {
	if m == nil {
		return
	}
	m.CorpusRecords.WithLabelValues(CollectionStatutes).Set(float64(statutes))
	m.CorpusRecords.WithLabelValues(CollectionCases).Set(float64(cases))
}
