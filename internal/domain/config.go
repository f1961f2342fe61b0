package domain

// Config is the normalized result of loading a nexus.yaml file. Tools is
// the frozen catalog; Runtime carries collaborator settings.
type Config struct {
	Tools   []Tool
	Runtime RuntimeConfig
}

type RuntimeConfig struct {
	Capability    CapabilityConfig
	Observability ObservabilityConfig
	State         StateConfig
	Billing       BillingConfig
}

// CapabilityConfig selects and configures the generative backend.
type CapabilityConfig struct {
	Provider       string
	Model          string
	ImageModel     string
	APIKey         string
	APIKeyEnvVar   string
	BaseURL        string
	TimeoutSeconds int
}

type ObservabilityConfig struct {
	ListenAddress string
	EnableMetrics bool
	EnableHealthz bool
}

// StateConfig locates the bbolt file backing history and session state.
type StateConfig struct {
	Path string
}

type BillingConfig struct {
	InitialCredits int
	SettleSeconds  int
}
