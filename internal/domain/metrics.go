package domain

import "time"

// Metrics receives observations from the query engine and the dispatcher.
// Implementations must be safe for concurrent use.
type Metrics interface {
	ObserveQuery(duration time.Duration, toolHits, historyHits int)
	ObserveSelection(kind SelectionKind)
	ObserveGeneration(mode Mode, status GenerationStatus, duration time.Duration)
	ObserveCapabilityTokens(provider, model string, tokens int)
}
