package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"nexus/internal/domain"
)

type PrometheusMetrics struct {
	queryDuration      prometheus.Histogram
	queryResults       *prometheus.HistogramVec
	selections         *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	generations        *prometheus.CounterVec
	capabilityTokens   *prometheus.CounterVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		queryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nexus_query_duration_seconds",
				Help:    "Duration of unified search queries in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
		),
		queryResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nexus_query_results",
				Help:    "Result counts per query, by source",
				Buckets: []float64{0, 1, 2, 3, 5, 10, 25},
			},
			[]string{"source"},
		),
		selections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexus_selections_total",
				Help: "Total search selections by outcome kind",
			},
			[]string{"kind"},
		),
		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nexus_generation_duration_seconds",
				Help:    "Duration of generation submissions in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"mode", "status"},
		),
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexus_generations_total",
				Help: "Total generation submissions by mode and status",
			},
			[]string{"mode", "status"},
		),
		capabilityTokens: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexus_capability_tokens_total",
				Help: "Total tokens reported by the generative capability",
			},
			[]string{"provider", "model"},
		),
	}
}

func (m *PrometheusMetrics) ObserveQuery(duration time.Duration, toolHits, historyHits int) {
	m.queryDuration.Observe(duration.Seconds())
	m.queryResults.WithLabelValues("tools").Observe(float64(toolHits))
	m.queryResults.WithLabelValues("history").Observe(float64(historyHits))
}

func (m *PrometheusMetrics) ObserveSelection(kind domain.SelectionKind) {
	m.selections.WithLabelValues(string(kind)).Inc()
}

func (m *PrometheusMetrics) ObserveGeneration(mode domain.Mode, status domain.GenerationStatus, duration time.Duration) {
	m.generationDuration.WithLabelValues(string(mode), string(status)).Observe(duration.Seconds())
	m.generations.WithLabelValues(string(mode), string(status)).Inc()
}

func (m *PrometheusMetrics) ObserveCapabilityTokens(provider, model string, tokens int) {
	m.capabilityTokens.WithLabelValues(provider, model).Add(float64(tokens))
}

var _ domain.Metrics = (*PrometheusMetrics)(nil)
