package search

import "nexus/internal/domain"

// Session is the explicit state machine behind one search box: current
// text, whether results are presented, and the terminal select transition.
// Matches are derived, never stored, so collapsing and reopening a panel
// with stale text reproduces the same result set.
//
// Sessions follow the single-threaded event-driven model of the
// presentation shell and are not safe for concurrent use.
type Session struct {
	engine  *Engine
	metrics domain.Metrics
	text    string
	open    bool
}

func NewSession(engine *Engine) *Session {
	return &Session{engine: engine, metrics: engine.metrics}
}

func (s *Session) Text() string { return s.text }
func (s *Session) Open() bool   { return s.open }

// SetText updates the input and opens the panel, mirroring keystroke
// behavior. Returns the recomputed result set.
func (s *Session) SetText(text string) domain.QueryResult {
	s.text = text
	s.open = true
	return s.engine.Query(text)
}

// SetOpen shows or hides results. Idempotent; it never touches the match
// computation.
func (s *Session) SetOpen(open bool) {
	s.open = open
}

// Results returns the current matches when the panel is open, and nothing
// when it is closed.
func (s *Session) Results() domain.QueryResult {
	if !s.open {
		return domain.QueryResult{}
	}
	return s.engine.Query(s.text)
}

// SelectTool ends the session. Internal tools signal navigation into the
// studio; external ones carry their URL out.
func (s *Session) SelectTool(tool domain.Tool) domain.Selection {
	s.reset()
	selection := domain.Selection{Tool: &tool}
	if tool.Internal {
		selection.Kind = domain.SelectionOpenStudio
	} else {
		selection.Kind = domain.SelectionOpenURL
		selection.URL = tool.URL
	}
	if s.metrics != nil {
		s.metrics.ObserveSelection(selection.Kind)
	}
	return selection
}

// SelectRecord ends the session with a replay event. Nothing acts on it
// yet, but collaborators observe the distinct kind.
func (s *Session) SelectRecord(record domain.HistoryRecord) domain.Selection {
	s.reset()
	selection := domain.Selection{Kind: domain.SelectionReplay, Record: &record}
	if s.metrics != nil {
		s.metrics.ObserveSelection(selection.Kind)
	}
	return selection
}

func (s *Session) reset() {
	s.text = ""
	s.open = false
}
