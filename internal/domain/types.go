package domain

import (
	"encoding/base64"
	"fmt"
	"time"
)

// ToolCategory is one of the ten fixed catalog labels.
type ToolCategory string

const (
	CategoryWriting      ToolCategory = "Writing"
	CategoryDesign       ToolCategory = "Design"
	CategoryVideo        ToolCategory = "Video"
	CategoryImage        ToolCategory = "Image"
	CategoryProductivity ToolCategory = "Productivity"
	CategoryCode         ToolCategory = "Code"
	CategorySEO          ToolCategory = "SEO"
	CategoryWebsite      ToolCategory = "Website"
	CategoryWorkflow     ToolCategory = "Workflow"
	CategoryAgents       ToolCategory = "Agents"
)

// Categories returns the closed category set in display order.
func Categories() []ToolCategory {
	return []ToolCategory{
		CategoryWriting,
		CategoryDesign,
		CategoryVideo,
		CategoryImage,
		CategoryProductivity,
		CategoryCode,
		CategorySEO,
		CategoryWebsite,
		CategoryWorkflow,
		CategoryAgents,
	}
}

func (c ToolCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Tool is one catalog entry. The catalog is frozen at startup: tools are
// never created, updated, or deleted while the process runs.
type Tool struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    ToolCategory `json:"category"`
	Icon        IconKey      `json:"icon"`
	URL         string       `json:"url"`
	Popular     bool         `json:"popular,omitempty"`
	// Internal tools route into the studio instead of leaving the app.
	Internal bool `json:"internal,omitempty"`
}

// HistoryKind labels what a history record was produced by.
type HistoryKind string

const (
	HistoryChat  HistoryKind = "chat"
	HistoryCode  HistoryKind = "code"
	HistoryImage HistoryKind = "image"
)

// HistoryRecord is one past interaction. Records are owned by the history
// store; the query engine only reads them.
type HistoryRecord struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Kind      HistoryKind `json:"kind"`
	Tool      string      `json:"tool"`
	Date      string      `json:"date"`
	CreatedAt time.Time   `json:"createdAt,omitempty"`
}

// QueryResult is the ranked-merge output of one query: up to
// ToolResultLimit tools in catalog order, plus history most-recent-first.
type QueryResult struct {
	Tools   []Tool
	History []HistoryRecord
}

// SelectionKind tells the presentation shell how to act on a selection.
type SelectionKind string

const (
	// SelectionOpenStudio routes into the generation surface (internal tool).
	SelectionOpenStudio SelectionKind = "open_studio"
	// SelectionOpenURL opens the tool's URL in an external context.
	SelectionOpenURL SelectionKind = "open_url"
	// SelectionReplay is emitted for history records. Inert for now; kept
	// as a distinct event so a replay feature can hook it later.
	SelectionReplay SelectionKind = "replay"
)

// Selection is the terminal event of a query session.
type Selection struct {
	Kind   SelectionKind
	Tool   *Tool
	Record *HistoryRecord
	URL    string
}

// Mode is one of the three generation disciplines.
type Mode string

const (
	ModeChat  Mode = "chat"
	ModeCode  Mode = "code"
	ModeImage Mode = "image"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeChat, ModeCode, ModeImage:
		return true
	}
	return false
}

// ResultKind tags the shape held by a GenerationResult.
type ResultKind string

const (
	ResultText  ResultKind = "text"
	ResultCode  ResultKind = "code"
	ResultImage ResultKind = "image"
)

// ImageRef is a self-contained reference to a generated image: raw bytes
// plus their MIME type, renderable or downloadable without another fetch.
type ImageRef struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the image as an embedded data reference.
func (r ImageRef) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", r.MIMEType, base64.StdEncoding.EncodeToString(r.Data))
}

func (r ImageRef) Empty() bool {
	return len(r.Data) == 0
}

// GenerationResult normalizes the three mode-specific output shapes into
// one envelope. Text holds the payload for ResultText and ResultCode.
type GenerationResult struct {
	Kind  ResultKind
	Text  string
	Image ImageRef
}

// Phase is the dispatcher lifecycle state.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// GenerationState is a snapshot of the dispatcher. Result is non-nil only
// when Phase is PhaseSucceeded; Reason is non-empty only when PhaseFailed.
type GenerationState struct {
	Mode   Mode
	Phase  Phase
	Result *GenerationResult
	Reason string
	Seq    uint64
}

// GenerationStatus labels a settled submission for metrics.
type GenerationStatus string

const (
	GenerationSuccess    GenerationStatus = "success"
	GenerationFailed     GenerationStatus = "failed"
	GenerationDeclined   GenerationStatus = "declined"
	GenerationSuperseded GenerationStatus = "superseded"
)
