package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain"
)

func TestPrometheusMetrics_Generation(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.ObserveGeneration(domain.ModeChat, domain.GenerationSuccess, 250*time.Millisecond)
	metrics.ObserveGeneration(domain.ModeChat, domain.GenerationSuccess, 100*time.Millisecond)
	metrics.ObserveGeneration(domain.ModeImage, domain.GenerationDeclined, time.Second)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.generations.WithLabelValues("chat", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.generations.WithLabelValues("image", "declined")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.generations.WithLabelValues("code", "failed")))
}

func TestPrometheusMetrics_QueryAndSelections(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.ObserveQuery(50*time.Microsecond, 5, 2)
	metrics.ObserveSelection(domain.SelectionOpenStudio)
	metrics.ObserveSelection(domain.SelectionOpenStudio)
	metrics.ObserveSelection(domain.SelectionOpenURL)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.selections.WithLabelValues("open_studio")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.selections.WithLabelValues("open_url")))

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["nexus_query_duration_seconds"])
	assert.True(t, names["nexus_query_results"])
}

func TestPrometheusMetrics_Tokens(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.ObserveCapabilityTokens("openai", "gpt-4o-mini", 1200)
	metrics.ObserveCapabilityTokens("openai", "gpt-4o-mini", 300)

	assert.Equal(t, float64(1500), testutil.ToFloat64(metrics.capabilityTokens.WithLabelValues("openai", "gpt-4o-mini")))
}

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var m domain.Metrics = NewNoopMetrics()
	m.ObserveQuery(time.Millisecond, 1, 1)
	m.ObserveSelection(domain.SelectionReplay)
	m.ObserveGeneration(domain.ModeCode, domain.GenerationFailed, time.Second)
	m.ObserveCapabilityTokens("genai", "gemini-2.5-flash", 10)
}
