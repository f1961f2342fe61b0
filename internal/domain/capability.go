package domain

import "context"

// Capability is the external generative backend. Implementations own the
// mode-specific request framing (system prompt, code template, image
// shape); the dispatcher only picks which operation to call.
//
// GenerateImage returns ErrNoImage (wrapped with CodeDeclined) when the
// call completes without producing an artifact, so callers can tell a
// decline apart from a transport failure.
type Capability interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateCode(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (ImageRef, error)
}
