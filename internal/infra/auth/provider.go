// Package auth models the login gate as a pluggable collaborator so the
// simulated provider and a real integration are interchangeable without
// touching the core.
package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"nexus/internal/domain"
)

// Provider is the narrow surface the shell needs: sign in, sign out, and a
// persisted signed-in flag.
type Provider interface {
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	SignedIn(ctx context.Context) bool
}

// SimulatedProvider accepts any non-empty credentials and persists only the
// boolean session flag, matching the original mock gate.
type SimulatedProvider struct {
	sessions *SessionStore
	logger   *zap.Logger
}

func NewSimulatedProvider(sessions *SessionStore, logger *zap.Logger) *SimulatedProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedProvider{sessions: sessions, logger: logger.Named("auth")}
}

func (p *SimulatedProvider) SignIn(_ context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return domain.E(domain.CodeUnauthenticated, "auth.SignIn", "email and password are required", nil)
	}
	if err := p.sessions.SetSignedIn(true); err != nil {
		return err
	}
	p.logger.Info("signed in", zap.String("email", email))
	return nil
}

func (p *SimulatedProvider) SignOut(_ context.Context) error {
	if err := p.sessions.SetSignedIn(false); err != nil {
		return err
	}
	p.logger.Info("signed out")
	return nil
}

func (p *SimulatedProvider) SignedIn(_ context.Context) bool {
	signedIn, err := p.sessions.SignedIn()
	if err != nil {
		p.logger.Warn("session read failed", zap.Error(err))
		return false
	}
	return signedIn
}

var _ Provider = (*SimulatedProvider)(nil)
