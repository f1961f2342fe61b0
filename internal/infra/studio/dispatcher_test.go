package studio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain"
)

// mockCapability implements domain.Capability with function fields.
type mockCapability struct {
	textFunc  func(ctx context.Context, prompt string) (string, error)
	codeFunc  func(ctx context.Context, prompt string) (string, error)
	imageFunc func(ctx context.Context, prompt string) (domain.ImageRef, error)
}

func (m *mockCapability) GenerateText(ctx context.Context, prompt string) (string, error) {
	if m.textFunc != nil {
		return m.textFunc(ctx, prompt)
	}
	return "", errors.New("not implemented")
}

func (m *mockCapability) GenerateCode(ctx context.Context, prompt string) (string, error) {
	if m.codeFunc != nil {
		return m.codeFunc(ctx, prompt)
	}
	return "", errors.New("not implemented")
}

func (m *mockCapability) GenerateImage(ctx context.Context, prompt string) (domain.ImageRef, error) {
	if m.imageFunc != nil {
		return m.imageFunc(ctx, prompt)
	}
	return domain.ImageRef{}, errors.New("not implemented")
}

func TestSubmit_EmptyPromptIsNoOp(t *testing.T) {
	called := false
	dispatcher := NewDispatcher(&mockCapability{
		textFunc: func(context.Context, string) (string, error) {
			called = true
			return "reply", nil
		},
	}, nil, nil)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		state := dispatcher.Submit(context.Background(), prompt)
		assert.Equal(t, domain.PhaseIdle, state.Phase, "prompt %q", prompt)
	}
	assert.False(t, called, "capability must not be invoked for empty prompts")
}

func TestSubmit_LifecyclePassesThroughPending(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	dispatcher := NewDispatcher(&mockCapability{
		textFunc: func(context.Context, string) (string, error) {
			close(started)
			<-release
			return "hello from nexus", nil
		},
	}, nil, nil)

	done := make(chan domain.GenerationState, 1)
	go func() {
		done <- dispatcher.Submit(context.Background(), "say hello")
	}()

	<-started
	assert.Equal(t, domain.PhasePending, dispatcher.State().Phase)

	close(release)
	state := <-done
	assert.Equal(t, domain.PhaseSucceeded, state.Phase)
	require.NotNil(t, state.Result)
	assert.Equal(t, domain.ResultText, state.Result.Kind)
	assert.Equal(t, "hello from nexus", state.Result.Text)
	assert.Empty(t, state.Reason)
}

func TestSubmit_ModeDispatchTable(t *testing.T) {
	capability := &mockCapability{
		textFunc: func(context.Context, string) (string, error) {
			return "prose", nil
		},
		codeFunc: func(context.Context, string) (string, error) {
			return "```go\nfunc main() {}\n```", nil
		},
		imageFunc: func(context.Context, string) (domain.ImageRef, error) {
			return domain.ImageRef{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}, nil
		},
	}

	tests := []struct {
		mode     domain.Mode
		wantKind domain.ResultKind
	}{
		{domain.ModeChat, domain.ResultText},
		{domain.ModeCode, domain.ResultCode},
		{domain.ModeImage, domain.ResultImage},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			dispatcher := NewDispatcher(capability, nil, nil)
			dispatcher.SetMode(tt.mode)

			state := dispatcher.Submit(context.Background(), "a red cube")

			require.Equal(t, domain.PhaseSucceeded, state.Phase)
			require.NotNil(t, state.Result)
			assert.Equal(t, tt.wantKind, state.Result.Kind)
		})
	}
}

func TestSubmit_FailurePreservesReason(t *testing.T) {
	dispatcher := NewDispatcher(&mockCapability{
		textFunc: func(context.Context, string) (string, error) {
			return "", errors.New("quota exceeded for project")
		},
	}, nil, nil)

	state := dispatcher.Submit(context.Background(), "anything")

	assert.Equal(t, domain.PhaseFailed, state.Phase)
	assert.Nil(t, state.Result)
	assert.Contains(t, state.Reason, "quota exceeded for project")
}

func TestSubmit_ImageDeclineIsFailedWithReason(t *testing.T) {
	tests := []struct {
		name      string
		imageFunc func(ctx context.Context, prompt string) (domain.ImageRef, error)
	}{
		{
			name: "empty ref without error",
			imageFunc: func(context.Context, string) (domain.ImageRef, error) {
				return domain.ImageRef{}, nil
			},
		},
		{
			name: "explicit declined error",
			imageFunc: func(context.Context, string) (domain.ImageRef, error) {
				return domain.ImageRef{}, domain.Wrap(domain.CodeDeclined, "capability.generateImage", domain.ErrNoImage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := NewDispatcher(&mockCapability{imageFunc: tt.imageFunc}, nil, nil)
			dispatcher.SetMode(domain.ModeImage)

			state := dispatcher.Submit(context.Background(), "a red cube")

			assert.Equal(t, domain.PhaseFailed, state.Phase)
			assert.Nil(t, state.Result)
			assert.NotEmpty(t, state.Reason)
			assert.Contains(t, state.Reason, "without an image")
		})
	}
}

func TestSetMode_ClearsHeldResult(t *testing.T) {
	dispatcher := NewDispatcher(&mockCapability{
		imageFunc: func(context.Context, string) (domain.ImageRef, error) {
			return domain.ImageRef{MIMEType: "image/jpeg", Data: []byte{0xff}}, nil
		},
	}, nil, nil)
	dispatcher.SetMode(domain.ModeImage)

	state := dispatcher.Submit(context.Background(), "a red cube")
	require.Equal(t, domain.PhaseSucceeded, state.Phase)

	// An image-shaped result must never surface under code-display rules.
	dispatcher.SetMode(domain.ModeCode)
	state = dispatcher.State()
	assert.Equal(t, domain.ModeCode, state.Mode)
	assert.Equal(t, domain.PhaseIdle, state.Phase)
	assert.Nil(t, state.Result)
	assert.Empty(t, state.Reason)
}

func TestSetMode_SameModeKeepsResult(t *testing.T) {
	dispatcher := NewDispatcher(&mockCapability{
		textFunc: func(context.Context, string) (string, error) {
			return "kept", nil
		},
	}, nil, nil)

	state := dispatcher.Submit(context.Background(), "hi")
	require.Equal(t, domain.PhaseSucceeded, state.Phase)

	dispatcher.SetMode(domain.ModeChat)
	assert.Equal(t, domain.PhaseSucceeded, dispatcher.State().Phase)
}

func TestSetMode_WhilePendingCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	canceled := make(chan struct{})
	dispatcher := NewDispatcher(&mockCapability{
		textFunc: func(ctx context.Context, _ string) (string, error) {
			close(started)
			<-ctx.Done()
			close(canceled)
			return "", ctx.Err()
		},
	}, nil, nil)

	done := make(chan domain.GenerationState, 1)
	go func() {
		done <- dispatcher.Submit(context.Background(), "slow")
	}()

	<-started
	dispatcher.SetMode(domain.ModeCode)

	select {
	case <-canceled:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded call was not canceled")
	}

	state := <-done
	// The settle was dropped; the mode switch owns the state.
	assert.Equal(t, domain.ModeCode, state.Mode)
	assert.Equal(t, domain.PhaseIdle, state.Phase)
	assert.Nil(t, state.Result)
}

func TestSubmit_LastSubmissionWins(t *testing.T) {
	startedA := make(chan struct{})
	releaseA := make(chan struct{})
	calls := 0
	dispatcher := NewDispatcher(&mockCapability{
		textFunc: func(ctx context.Context, prompt string) (string, error) {
			calls++
			if calls == 1 {
				// Ignore cancellation so A settles only when released,
				// strictly after B.
				close(startedA)
				<-releaseA
				return "outcome A", nil
			}
			return "outcome B", nil
		},
	}, nil, nil)

	doneA := make(chan domain.GenerationState, 1)
	go func() {
		doneA <- dispatcher.Submit(context.Background(), "first")
	}()
	<-startedA

	stateB := dispatcher.Submit(context.Background(), "second")
	require.Equal(t, domain.PhaseSucceeded, stateB.Phase)
	require.NotNil(t, stateB.Result)
	assert.Equal(t, "outcome B", stateB.Result.Text)

	// Let A settle late: it must not overwrite B's state.
	close(releaseA)
	stateA := <-doneA
	require.NotNil(t, stateA.Result)
	assert.Equal(t, "outcome B", stateA.Result.Text)

	final := dispatcher.State()
	require.Equal(t, domain.PhaseSucceeded, final.Phase)
	require.NotNil(t, final.Result)
	assert.Equal(t, "outcome B", final.Result.Text)
}

func TestSubmit_ResubmissionAfterFailureRecovers(t *testing.T) {
	attempt := 0
	dispatcher := NewDispatcher(&mockCapability{
		textFunc: func(context.Context, string) (string, error) {
			attempt++
			if attempt == 1 {
				return "", errors.New("transient backend failure")
			}
			return "second time lucky", nil
		},
	}, nil, nil)

	state := dispatcher.Submit(context.Background(), "try")
	require.Equal(t, domain.PhaseFailed, state.Phase)

	state = dispatcher.Submit(context.Background(), "try")
	require.Equal(t, domain.PhaseSucceeded, state.Phase)
	require.NotNil(t, state.Result)
	assert.Equal(t, "second time lucky", state.Result.Text)
	assert.Empty(t, state.Reason)
}
