package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"nexus/internal/domain"
)

type sampleConfig struct {
	Tools         []sampleTool        `yaml:"tools"`
	Capability    sampleCapability    `yaml:"capability"`
	Observability sampleObservability `yaml:"observability"`
	State         sampleState         `yaml:"state"`
	Billing       sampleBilling       `yaml:"billing"`
}

type sampleTool struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Icon        string `yaml:"icon"`
	URL         string `yaml:"url"`
	Popular     bool   `yaml:"popular,omitempty"`
	Internal    bool   `yaml:"internal,omitempty"`
}

type sampleCapability struct {
	Provider       string `yaml:"provider"`
	Model          string `yaml:"model"`
	ImageModel     string `yaml:"imageModel"`
	APIKeyEnvVar   string `yaml:"apiKeyEnvVar"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

type sampleObservability struct {
	ListenAddress string `yaml:"listenAddress"`
	EnableMetrics bool   `yaml:"enableMetrics"`
	EnableHealthz bool   `yaml:"enableHealthz"`
}

type sampleState struct {
	Path string `yaml:"path"`
}

type sampleBilling struct {
	InitialCredits int `yaml:"initialCredits"`
	SettleSeconds  int `yaml:"settleSeconds"`
}

// WriteSample writes a complete starter config, including the built-in
// catalog, to path. Refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.E(domain.CodeFailedPrecond, "catalog.WriteSample", "refusing to overwrite "+path, nil)
	}

	sample := sampleConfig{
		Capability: sampleCapability{
			Provider:       domain.DefaultProvider,
			Model:          domain.DefaultTextModel,
			ImageModel:     domain.DefaultImageModel,
			APIKeyEnvVar:   "GEMINI_API_KEY",
			TimeoutSeconds: domain.DefaultCapabilityTimeoutSeconds,
		},
		Observability: sampleObservability{
			ListenAddress: domain.DefaultObservabilityListenAddress,
			EnableMetrics: true,
			EnableHealthz: true,
		},
		State:   sampleState{Path: domain.DefaultStatePath},
		Billing: sampleBilling{InitialCredits: domain.DefaultInitialCredits, SettleSeconds: domain.DefaultBillingSettleSeconds},
	}
	for _, tool := range DefaultTools() {
		sample.Tools = append(sample.Tools, sampleTool{
			ID:          tool.ID,
			Name:        tool.Name,
			Description: tool.Description,
			Category:    string(tool.Category),
			Icon:        string(tool.Icon),
			URL:         tool.URL,
			Popular:     tool.Popular,
			Internal:    tool.Internal,
		})
	}

	data, err := yaml.Marshal(sample)
	if err != nil {
		return domain.E(domain.CodeInternal, "catalog.WriteSample", "marshal sample config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.E(domain.CodeUnavailable, "catalog.WriteSample", "write "+path, err)
	}
	return nil
}
