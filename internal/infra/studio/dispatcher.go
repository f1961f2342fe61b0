package studio

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"nexus/internal/domain"
)

// Dispatcher drives the three-mode generation lifecycle:
// Idle -> Pending -> {Succeeded, Failed} -> Idle. It issues exactly one
// outbound call per submission, never retries, and applies results
// last-submission-wins: every submission gets a monotonically increasing
// sequence number, a superseded in-flight call is canceled outright (the
// backend is metered), and a stale settlement is dropped instead of
// overwriting newer state.
type Dispatcher struct {
	capability domain.Capability
	metrics    domain.Metrics
	logger     *zap.Logger

	mu     sync.Mutex
	mode   domain.Mode
	phase  domain.Phase
	result *domain.GenerationResult
	reason string
	seq    uint64
	cancel context.CancelFunc
}

func NewDispatcher(capability domain.Capability, metrics domain.Metrics, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		capability: capability,
		metrics:    metrics,
		logger:     logger.Named("dispatcher"),
		mode:       domain.ModeChat,
		phase:      domain.PhaseIdle,
	}
}

// State returns a snapshot of the current lifecycle.
func (d *Dispatcher) State() domain.GenerationState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Dispatcher) snapshotLocked() domain.GenerationState {
	return domain.GenerationState{
		Mode:   d.mode,
		Phase:  d.phase,
		Result: d.result,
		Reason: d.reason,
		Seq:    d.seq,
	}
}

func (d *Dispatcher) Mode() domain.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SetMode switches the generation discipline. Any held result, failure
// reason, and pending submission tied to the previous mode is discarded,
// so an image-shaped result can never surface under code-display rules.
// A switch while Pending cancels the in-flight call.
func (d *Dispatcher) SetMode(mode domain.Mode) {
	if !mode.Valid() {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if mode == d.mode {
		return
	}
	// Bump seq so a late settlement from the old mode is dropped.
	d.seq++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mode = mode
	d.phase = domain.PhaseIdle
	d.result = nil
	d.reason = ""
}

// Submit runs one generation for the current mode and blocks until it
// settles. A whitespace-only prompt is a no-op, not an error. The returned
// snapshot reflects the dispatcher after settlement; when a newer
// submission superseded this one, it is that submission's state.
func (d *Dispatcher) Submit(ctx context.Context, prompt string) domain.GenerationState {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return d.State()
	}

	d.mu.Lock()
	d.seq++
	seq := d.seq
	if d.cancel != nil {
		// Supersede: cancel the older call rather than letting it bill on.
		d.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	mode := d.mode
	d.phase = domain.PhasePending
	d.result = nil
	d.reason = ""
	d.mu.Unlock()

	started := time.Now()
	result, err := d.dispatch(callCtx, mode, trimmed)
	cancel()
	elapsed := time.Since(started)

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		// A newer submission (or a mode switch) owns the state now.
		d.observe(mode, domain.GenerationSuperseded, elapsed)
		return d.snapshotLocked()
	}
	d.cancel = nil
	if err != nil {
		d.phase = domain.PhaseFailed
		d.reason = err.Error()
		d.result = nil
		status := domain.GenerationFailed
		if code, ok := domain.CodeFrom(err); ok && code == domain.CodeDeclined {
			status = domain.GenerationDeclined
		}
		d.observe(mode, status, elapsed)
		d.logger.Warn("generation failed",
			zap.String("mode", string(mode)),
			zap.Error(err),
		)
		return d.snapshotLocked()
	}
	d.phase = domain.PhaseSucceeded
	d.result = &result
	d.observe(mode, domain.GenerationSuccess, elapsed)
	return d.snapshotLocked()
}

// dispatch issues the single outbound call for the mode and normalizes the
// three result shapes into the envelope.
func (d *Dispatcher) dispatch(ctx context.Context, mode domain.Mode, prompt string) (domain.GenerationResult, error) {
	switch mode {
	case domain.ModeChat:
		text, err := d.capability.GenerateText(ctx, prompt)
		if err != nil {
			return domain.GenerationResult{}, domain.Wrap(domain.CodeUnavailable, "studio.chat", err)
		}
		return domain.GenerationResult{Kind: domain.ResultText, Text: text}, nil
	case domain.ModeCode:
		code, err := d.capability.GenerateCode(ctx, prompt)
		if err != nil {
			return domain.GenerationResult{}, domain.Wrap(domain.CodeUnavailable, "studio.code", err)
		}
		return domain.GenerationResult{Kind: domain.ResultCode, Text: code}, nil
	case domain.ModeImage:
		image, err := d.capability.GenerateImage(ctx, prompt)
		if err != nil {
			return domain.GenerationResult{}, domain.Wrap(domain.CodeUnavailable, "studio.image", err)
		}
		if image.Empty() {
			// Completed without an artifact: a decline, not a transport
			// failure, and the reason says so.
			return domain.GenerationResult{}, domain.Wrap(domain.CodeDeclined, "studio.image", domain.ErrNoImage)
		}
		return domain.GenerationResult{Kind: domain.ResultImage, Image: image}, nil
	default:
		return domain.GenerationResult{}, domain.E(domain.CodeInvalidArgument, "studio.dispatch", "unknown mode "+string(mode), nil)
	}
}

func (d *Dispatcher) observe(mode domain.Mode, status domain.GenerationStatus, elapsed time.Duration) {
	if d.metrics == nil {
		return
	}
	d.metrics.ObserveGeneration(mode, status, elapsed)
}
