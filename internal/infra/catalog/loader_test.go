package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nexus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	loader := NewLoader(nil)

	cfg, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Len(t, cfg.Tools, 33)
	assert.Equal(t, domain.DefaultProvider, cfg.Runtime.Capability.Provider)
	assert.Equal(t, domain.DefaultTextModel, cfg.Runtime.Capability.Model)
	assert.Equal(t, domain.DefaultImageModel, cfg.Runtime.Capability.ImageModel)
	assert.Equal(t, domain.DefaultObservabilityListenAddress, cfg.Runtime.Observability.ListenAddress)
	assert.True(t, cfg.Runtime.Observability.EnableMetrics)
	assert.Equal(t, domain.DefaultStatePath, cfg.Runtime.State.Path)
	assert.Equal(t, domain.DefaultInitialCredits, cfg.Runtime.Billing.InitialCredits)
}

func TestLoad_ExplicitTools(t *testing.T) {
	path := writeConfig(t, `
tools:
  - id: mytool
    name: My Tool
    description: Does things.
    category: Code
    icon: code
    url: https://example.com
    popular: true
    internal: true
capability:
  provider: openai
  model: gpt-4o-mini
  baseURL: https://llm.internal.example
state:
  path: /tmp/test-nexus.db
`)

	cfg, err := NewLoader(nil).Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Tools, 1)
	tool := cfg.Tools[0]
	assert.Equal(t, "mytool", tool.ID)
	assert.Equal(t, domain.CategoryCode, tool.Category)
	assert.Equal(t, domain.IconCode, tool.Icon)
	assert.True(t, tool.Internal)

	assert.Equal(t, "openai", cfg.Runtime.Capability.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Runtime.Capability.Model)
	assert.Equal(t, "https://llm.internal.example", cfg.Runtime.Capability.BaseURL)
	assert.Equal(t, "/tmp/test-nexus.db", cfg.Runtime.State.Path)
	// Untouched sections keep their defaults.
	assert.Equal(t, domain.DefaultCapabilityTimeoutSeconds, cfg.Runtime.Capability.TimeoutSeconds)
}

func TestLoad_UnknownCategoryRejected(t *testing.T) {
	path := writeConfig(t, `
tools:
  - id: mytool
    name: My Tool
    category: Gardening
    url: https://example.com
`)

	_, err := NewLoader(nil).Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestLoad_UnknownIconSoftDefaults(t *testing.T) {
	path := writeConfig(t, `
tools:
  - id: mytool
    name: My Tool
    category: Code
    icon: holographic-duck
    url: https://example.com
`)

	cfg, err := NewLoader(nil).Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Tools, 1)
	assert.Equal(t, domain.IconGeneric, cfg.Tools[0].Icon)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "tools: [unclosed")

	_, err := NewLoader(nil).Load(path)

	require.Error(t, err)
}

func TestWriteSample_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.yaml")

	require.NoError(t, WriteSample(path))

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Tools, 33)
	assert.Equal(t, domain.DefaultProvider, cfg.Runtime.Capability.Provider)

	// Second write must refuse to clobber.
	err = WriteSample(path)
	require.Error(t, err)
}
