// Package capability hosts the generative backends. Each provider owns the
// mode-specific request framing and its own timeout policy; the dispatcher
// above it only picks the operation and normalizes the outcome.
package capability

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"nexus/internal/domain"
)

// New builds the configured provider. "genai" (the default) talks to
// Gemini for text/code and Imagen for images; "openai" talks to any
// OpenAI-compatible endpoint and declines image generation.
func New(ctx context.Context, cfg domain.CapabilityConfig, metrics domain.Metrics, logger *zap.Logger) (domain.Capability, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case "genai", "":
		return newGenAIProvider(ctx, cfg, apiKey, logger)
	case "openai":
		return newEinoProvider(ctx, cfg, apiKey, metrics, logger)
	default:
		return nil, domain.E(domain.CodeInvalidArgument, "capability.New",
			"unsupported provider: "+cfg.Provider, domain.ErrUnknownProvider)
	}
}

func resolveAPIKey(cfg domain.CapabilityConfig) (string, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey != "" {
		return apiKey, nil
	}
	envVar := strings.TrimSpace(cfg.APIKeyEnvVar)
	if envVar == "" {
		return "", domain.E(domain.CodeFailedPrecond, "capability.New",
			"API key is required: set capability.apiKey or capability.apiKeyEnvVar", nil)
	}
	apiKey = os.Getenv(envVar)
	if apiKey == "" {
		return "", domain.E(domain.CodeFailedPrecond, "capability.New",
			"API key not found in env var "+envVar, nil)
	}
	return apiKey, nil
}

func callTimeout(cfg domain.CapabilityConfig) time.Duration {
	seconds := cfg.TimeoutSeconds
	if seconds <= 0 {
		seconds = domain.DefaultCapabilityTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
