package search

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"nexus/internal/domain"
)

// ToolSource provides the frozen catalog in catalog order.
type ToolSource interface {
	All() []domain.Tool
}

// HistorySource provides history records most-recent-first. Sources are
// expected to arrive already capped and ordered; the engine never re-sorts.
type HistorySource interface {
	Recent() []domain.HistoryRecord
}

// Engine is the unified query engine: a pure function of
// (text, catalog, history). It performs no I/O and has no error path; any
// string, including the empty one, is a valid query.
type Engine struct {
	tools   ToolSource
	history HistorySource
	limit   int
	metrics domain.Metrics
	logger  *zap.Logger
}

type Option func(*Engine)

// WithMetrics attaches a metrics sink. Observation never affects results.
func WithMetrics(m domain.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func NewEngine(tools ToolSource, history HistorySource, opts ...Option) *Engine {
	e := &Engine{
		tools:   tools,
		history: history,
		limit:   domain.ToolResultLimit,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("search")
	return e
}

// Query matches text case-insensitively as a substring of tool name or
// description, and of history title. Tool matches keep catalog order and
// are capped at the dropdown limit; history passes through uncapped. Empty
// text matches everything (the browse state shown on focus).
func (e *Engine) Query(text string) domain.QueryResult {
	started := time.Now()
	needle := strings.ToLower(text)

	var tools []domain.Tool
	for _, tool := range e.tools.All() {
		if len(tools) == e.limit {
			break
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(tool.Name), needle) ||
			strings.Contains(strings.ToLower(tool.Description), needle) {
			tools = append(tools, tool)
		}
	}

	var records []domain.HistoryRecord
	if e.history != nil {
		for _, record := range e.history.Recent() {
			if needle == "" || strings.Contains(strings.ToLower(record.Title), needle) {
				records = append(records, record)
			}
		}
	}

	if e.metrics != nil {
		e.metrics.ObserveQuery(time.Since(started), len(tools), len(records))
	}
	return domain.QueryResult{Tools: tools, History: records}
}
