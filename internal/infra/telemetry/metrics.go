package telemetry

import (
	"time"

	"nexus/internal/domain"
)

type NoopMetrics struct{}

func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (n *NoopMetrics) ObserveQuery(_ time.Duration, _, _ int) {}

func (n *NoopMetrics) ObserveSelection(_ domain.SelectionKind) {}

func (n *NoopMetrics) ObserveGeneration(_ domain.Mode, _ domain.GenerationStatus, _ time.Duration) {}

func (n *NoopMetrics) ObserveCapabilityTokens(_ string, _ string, _ int) {}

var _ domain.Metrics = (*NoopMetrics)(nil)
